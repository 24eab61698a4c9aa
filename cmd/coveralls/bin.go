package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Atul9/coveralls-api/config"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/profile"
	"github.com/Atul9/coveralls-api/pkg/report"
	"github.com/Atul9/coveralls-api/pkg/requestutils"
	"github.com/Atul9/coveralls-api/pkg/service/collector"
	"github.com/Atul9/coveralls-api/pkg/service/submit"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:     "coveralls",
		Long:    `coveralls converts a coverage profile into a coveralls job and submits it`,
		Version: global.BinaryVersion,
		Run:     run,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)
	rootCmd.AddCommand(ServeCommand())

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, logger := setup(cmd)
	if err := execute(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatalf("coveralls failed: %v", err)
	}
}

// setup loads the config and builds the logger, exiting on failure.
func setup(cmd *cobra.Command) (*config.CoverallsConfig, lumber.Logger) {
	cfg, err := config.LoadCoverallsConfig(cmd)
	if err != nil {
		fmt.Printf("[Error] Failed to load config: %s\n", err.Error())
		os.Exit(1)
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, "coveralls.log")
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Fatalf("Could not instantiate logger %s", err.Error())
	}
	return cfg, logger
}

// execute builds the report described by cfg and either prints it or submits it.
func execute(ctx context.Context, cfg *config.CoverallsConfig, logger lumber.Logger, out io.Writer) error {
	if err := config.ValidateCfg(cfg, logger); err != nil {
		logger.Errorf("invalid configuration: %v", err)
		return err
	}
	id, err := cfg.Identity()
	if err != nil {
		return err
	}

	files, err := profile.Load(cfg.Format, cfg.Profile, cfg.SrcRoot)
	if err != nil {
		logger.Errorf("failed to load %s profile %s: %v", cfg.Format, cfg.Profile, err)
		return err
	}
	logger.Debugf("loaded %d files from %s", len(files), cfg.Profile)

	coll, err := collector.New(cfg, logger)
	if err != nil {
		return err
	}
	rpt := report.New(id)
	if err := coll.Collect(ctx, rpt, files); err != nil {
		return err
	}

	if cfg.DryRun {
		body, err := rpt.Serialize()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(body))
		return err
	}

	requests := requestutils.New(logger, global.DefaultHTTPTimeout, nil)
	result, err := submit.New(requests, logger).Submit(ctx, rpt, cfg.Endpoint)
	if err != nil {
		return err
	}
	if result.Job != nil {
		logger.Infof("%s %s", result.Job.Message, result.Job.URL)
		_, err = fmt.Fprintln(out, result.Job.URL)
		return err
	}
	logger.Infof("coveralls answered with status %d", result.StatusCode)
	return nil
}
