package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// GlobalCoverallsConfig stores the config instance for global use
var GlobalCoverallsConfig *CoverallsConfig

// LoadCoverallsConfig loads config from command instance to predefined config variables
func LoadCoverallsConfig(cmd *cobra.Command) (*CoverallsConfig, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	if err := loadEnvFile(cmd); err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvPrefix(global.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"repoToken":    global.RepoTokenEnv,
		"serviceName":  global.ServiceNameEnv,
		"serviceJobID": global.ServiceJobIDEnv,
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	// set default configs
	setCoverallsDefaultConfig()

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".coveralls")
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME/.coveralls")
	}

	if err := viper.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		fmt.Println("Warning: No configuration file found. Proceeding with defaults")
	}

	cfg, err := populateCoverallsConfig(new(CoverallsConfig))
	if err != nil {
		return nil, err
	}
	GlobalCoverallsConfig = cfg
	return cfg, nil
}

// loadEnvFile loads variables from the --envFile file, or from ./.env when it exists.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("envFile")
	if envFile != "" {
		return godotenv.Load(envFile)
	}
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ValidateCfg checks the validity of the config
func ValidateCfg(cfg *CoverallsConfig, logger lumber.Logger) error {
	if err := utils.ValidateStruct(cfg); err != nil {
		return err
	}
	if _, err := cfg.Identity(); err != nil {
		return err
	}
	if len(cfg.Exclude) == 0 {
		logger.Debugf("no exclude patterns found in configuration.")
	}
	return nil
}
