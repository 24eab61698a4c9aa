package config

import (
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/spf13/viper"
)

func setCoverallsDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./coveralls.log")
	viper.SetDefault("Env", global.ProdEnv)
	viper.SetDefault("Verbose", false)
	viper.SetDefault("endpoint", global.CoverallsEndpoint)
	viper.SetDefault("format", global.DefaultProfileFormat)
	viper.SetDefault("srcRoot", ".")
	viper.SetDefault("parallelism", global.DefaultParallelism)
	viper.SetDefault("port", global.DefaultStubPort)
}
