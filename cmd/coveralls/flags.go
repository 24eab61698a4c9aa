package main

import (
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().String("envFile", "", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().BoolP("verbose", "", false, "Run in verbose mode")
	rootCmd.PersistentFlags().StringP("env", "e", global.ProdEnv, "Environment.")

	rootCmd.Flags().StringP("profile", "p", "", "coverage profile to submit")
	rootCmd.Flags().String("format", global.DefaultProfileFormat, "format of the coverage profile (go|lcov)")
	rootCmd.Flags().String("srcRoot", ".", "repository root the profiled files are resolved against")
	rootCmd.Flags().String("repoToken", "", "coveralls repo token")
	rootCmd.Flags().String("serviceName", "", "CI service name, used with --serviceJobID instead of a repo token")
	rootCmd.Flags().String("serviceJobID", "", "CI service job id")
	rootCmd.Flags().String("endpoint", global.CoverallsEndpoint, "coveralls jobs endpoint")
	rootCmd.Flags().Bool("includeSource", false, "send file contents along with coverage")
	rootCmd.Flags().StringArray("exclude", nil, "glob of files to leave out of the report, can be repeated")
	rootCmd.Flags().Bool("skipMissing", false, "skip profiled files that cannot be read")
	rootCmd.Flags().Bool("dryRun", false, "print the job json instead of submitting it")
	rootCmd.Flags().Int("parallelism", global.DefaultParallelism, "number of files read concurrently")

	return nil
}

// AttachServeFlags attaches command line flags to the serve command
func AttachServeFlags(serveCmd *cobra.Command) error {
	serveCmd.Flags().StringP("port", "", global.DefaultStubPort, "Port for the ingestion stub to listen on")
	return nil
}
