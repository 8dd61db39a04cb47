package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepgram/neuroscan/internal/api/handlers"
	"github.com/deepgram/neuroscan/internal/config"
	"github.com/deepgram/neuroscan/internal/services"
	"github.com/deepgram/neuroscan/pkg/logger"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup executes before exit
func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(logger.APP, "Failed to load configuration: %v", err)
		return 1
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error(logger.APP, "Failed to create upload directory %s: %v", cfg.UploadDir, err)
		return 1
	}

	svc, err := services.InitializeServices(cfg, services.LoadONNXModel)
	if err != nil {
		logger.Error(logger.APP, "Failed to initialize services: %v", err)
		return 1
	}
	defer svc.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      setupRouter(svc, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(logger.APP, "Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info(logger.APP, "Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error(logger.APP, "ListenAndServe error: %v", err)
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(logger.APP, "Graceful shutdown failed: %v", err)
		return 1
	}

	logger.Info(logger.APP, "Server stopped")
	return 0
}

func setupRouter(provider handlers.ServiceProvider, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r, provider, handlers.RouteConfig{MaxUploadBytes: cfg.MaxUploadBytes})
	return r
}
