package testutils

import (
	"encoding/json"
	"os"
	"path"
	"runtime"

	"github.com/Atul9/coveralls-api/config"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/lumber"
)

// getCurrentWorkingDir give the file path of this file
func getCurrentWorkingDir() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errs.New("runtime.Calller(1) was unable to recover information")
	}
	filepath := path.Join(path.Dir(filename), "../")
	return filepath, nil
}

// RootDir returns the absolute path of the repository root.
func RootDir() (string, error) {
	return getCurrentWorkingDir()
}

// GetConfig returns a dummy CoverallsConfig using the json file pointed by ApplicationConfigPath
func GetConfig() (*config.CoverallsConfig, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return nil, err
	}
	configJSON, err := os.ReadFile(cwd + ApplicationConfigPath)
	if err != nil {
		return nil, err
	}
	var cfg *config.CoverallsConfig
	err = json.Unmarshal(configJSON, &cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetLogger returns a dummy lumber.Logger.
func GetLogger() (lumber.Logger, error) {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{ConsoleLevel: lumber.Debug}, true, lumber.InstanceLogrusLogger)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// Path returns the absolute path of a file below the repository root.
func Path(relativePath string) (string, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return "", err
	}
	return path.Join(cwd, relativePath), nil
}

// LoadFile reads a file below the repository root.
func LoadFile(relativePath string) ([]byte, error) {
	absPath, err := Path(relativePath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(absPath)
}
