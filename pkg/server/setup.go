package server

import (
	"context"
	"net/http"

	"github.com/Atul9/coveralls-api/config"
	"github.com/Atul9/coveralls-api/pkg/api"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// ListenAndServe starts the ingestion stub and blocks until ctx is cancelled
// or the listener fails.
func ListenAndServe(ctx context.Context, router api.Router, cfg *config.CoverallsConfig, logger lumber.Logger) error {
	if cfg.Env == global.DevEnv {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Infof("Setting up http handler")

	errChan := make(chan error, 1)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Handler(),
	}

	go func() {
		logger.Infof("Starting ingestion stub on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("listen: %v", err)
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("Caller has requested graceful shutdown. shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), global.GracefulTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server Shutdown: %v", err)
			return err
		}
		return nil
	case err := <-errChan:
		return err
	}
}
