package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/Atul9/coveralls-api/pkg/api"
	"github.com/Atul9/coveralls-api/pkg/api/jobs"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/server"
	"github.com/spf13/cobra"
)

// ServeCommand returns the command running the local ingestion stub
func ServeCommand() *cobra.Command {
	serveCmd := cobra.Command{
		Use:   "serve",
		Short: "Run a local server accepting coveralls job submissions",
		Run:   serve,
	}
	AttachServeFlags(&serveCmd)
	return &serveCmd
}

func serve(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, logger := setup(cmd)
	logger.Infof("coveralls ingestion stub version: %s", global.BinaryVersion)

	router := api.NewRouter(logger, jobs.NewStore(), "http://localhost:"+cfg.Port)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.ListenAndServe(ctx, router, cfg, logger); err != nil {
			logger.Errorf("ingestion stub stopped: %v", err)
		}
	}()

	// listen for C-c
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	select {
	case <-c:
		logger.Debugf("main: received C-c - attempting graceful shutdown ....")
		cancel()
		select {
		case <-done:
			logger.Debugf("server exited within timeout")
		case <-time.After(global.GracefulTimeout + time.Second):
			logger.Errorf("Graceful timeout exceeded. Brutally killing the application")
		}
	case <-done:
		os.Exit(1)
	}
}
