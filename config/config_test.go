package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	viper.Reset()
	cmd := &cobra.Command{Use: "coveralls", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().String("envFile", "", "")
	cmd.Flags().String("repoToken", "", "")
	cmd.Flags().String("serviceName", "", "")
	cmd.Flags().String("serviceJobID", "", "")
	cmd.Flags().String("profile", "", "")
	cmd.Flags().StringSlice("exclude", []string{}, "")
	cmd.Flags().Bool("includeSource", false, "")
	cmd.Flags().Int("parallelism", global.DefaultParallelism, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func testLogger(t *testing.T) lumber.Logger {
	t.Helper()
	logger, err := lumber.NewLogger(lumber.LoggingConfig{ConsoleLevel: lumber.Debug}, true, lumber.InstanceLogrusLogger)
	require.NoError(t, err)
	return logger
}

func TestLoadCoverallsConfigDefaults(t *testing.T) {
	cmd := newTestCommand(t, "--repoToken", "flag-token", "--profile", "cover.out", "--exclude", "vendor/**", "--exclude", "**/*_mock.go")

	cfg, err := LoadCoverallsConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "flag-token", cfg.RepoToken)
	assert.Equal(t, "cover.out", cfg.Profile)
	assert.Equal(t, global.CoverallsEndpoint, cfg.Endpoint)
	assert.Equal(t, global.GoProfileFormat, cfg.Format)
	assert.Equal(t, ".", cfg.SrcRoot)
	assert.Equal(t, global.DefaultParallelism, cfg.Parallelism)
	assert.Equal(t, global.DefaultStubPort, cfg.Port)
	assert.Equal(t, []string{"vendor/**", "**/*_mock.go"}, cfg.Exclude)
	assert.False(t, cfg.IncludeSource)
	assert.True(t, cfg.LogConfig.EnableConsole)
	assert.Equal(t, "info", cfg.LogConfig.ConsoleLevel)
	assert.Same(t, cfg, GlobalCoverallsConfig)
}

func TestLoadCoverallsConfigEnv(t *testing.T) {
	t.Setenv(global.ServiceNameEnv, "travis-ci")
	t.Setenv(global.ServiceJobIDEnv, "4242")
	t.Setenv("COVERALLS_ENDPOINT", "http://localhost:9876/api/v1/jobs")
	cmd := newTestCommand(t)

	cfg, err := LoadCoverallsConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "travis-ci", cfg.ServiceName)
	assert.Equal(t, "4242", cfg.ServiceJobID)
	assert.Equal(t, "http://localhost:9876/api/v1/jobs", cfg.Endpoint)
}

func TestLoadCoverallsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coveralls.json")
	content := `{"serviceName": "circleci", "serviceJobID": "17", "format": "lcov", "includeSource": true, "exclude": ["gen/**"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	cmd := newTestCommand(t, "--config", path)

	cfg, err := LoadCoverallsConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "circleci", cfg.ServiceName)
	assert.Equal(t, "17", cfg.ServiceJobID)
	assert.Equal(t, global.LCOVProfileFormat, cfg.Format)
	assert.True(t, cfg.IncludeSource)
	assert.Equal(t, []string{"gen/**"}, cfg.Exclude)
}

func TestLoadCoverallsConfigMissingFile(t *testing.T) {
	cmd := newTestCommand(t, "--config", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := LoadCoverallsConfig(cmd)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadCoverallsConfigEnvFile(t *testing.T) {
	require.NoError(t, os.Unsetenv(global.RepoTokenEnv))
	t.Cleanup(func() { os.Unsetenv(global.RepoTokenEnv) })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(global.RepoTokenEnv+"=dotenv-token\n"), 0600))
	cmd := newTestCommand(t, "--envFile", path)

	cfg, err := LoadCoverallsConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", cfg.RepoToken)
}

func TestLoadCoverallsConfigMissingEnvFile(t *testing.T) {
	cmd := newTestCommand(t, "--envFile", filepath.Join(t.TempDir(), "missing.env"))

	_, err := LoadCoverallsConfig(cmd)
	assert.Error(t, err)
}

func validConfig() *CoverallsConfig {
	return &CoverallsConfig{
		RepoToken:   "token",
		Endpoint:    global.CoverallsEndpoint,
		Profile:     "cover.out",
		Format:      global.GoProfileFormat,
		SrcRoot:     ".",
		Parallelism: 1,
	}
}

func TestValidateCfg(t *testing.T) {
	logger := testLogger(t)
	tests := []struct {
		name    string
		mutate  func(c *CoverallsConfig)
		wantErr bool
	}{
		{"repo token", func(c *CoverallsConfig) {}, false},
		{"service token", func(c *CoverallsConfig) { c.RepoToken, c.ServiceName, c.ServiceJobID = "", "travis-ci", "1" }, false},
		{"both identities", func(c *CoverallsConfig) { c.ServiceName, c.ServiceJobID = "travis-ci", "1" }, true},
		{"no identity", func(c *CoverallsConfig) { c.RepoToken = "" }, true},
		{"service without job id", func(c *CoverallsConfig) { c.RepoToken, c.ServiceName = "", "travis-ci" }, true},
		{"job id without service", func(c *CoverallsConfig) { c.ServiceJobID = "1" }, true},
		{"invalid endpoint", func(c *CoverallsConfig) { c.Endpoint = "not a url" }, true},
		{"unknown format", func(c *CoverallsConfig) { c.Format = "cobertura" }, true},
		{"no profile", func(c *CoverallsConfig) { c.Profile = "" }, true},
		{"no parallelism", func(c *CoverallsConfig) { c.Parallelism = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := ValidateCfg(cfg, logger)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCfg() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoverallsConfigIdentity(t *testing.T) {
	cfg := validConfig()
	id, err := cfg.Identity()
	require.NoError(t, err)
	assert.Equal(t, report.RepoToken("token"), id)

	cfg = validConfig()
	cfg.RepoToken, cfg.ServiceName, cfg.ServiceJobID = "", "jenkins", "99"
	id, err = cfg.Identity()
	require.NoError(t, err)
	assert.Equal(t, report.ServiceToken{Name: "jenkins", JobID: "99"}, id)

	cfg.RepoToken = "token"
	id, err = cfg.Identity()
	assert.Nil(t, id)
	assert.True(t, errors.Is(err, errs.ErrInvalidIdentity))
}
