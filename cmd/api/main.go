package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-analyzer/internal/bootstrap"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		telemetry.Error("api.bootstrap_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("api.listening", map[string]any{"addr": addr, "store": app.StoreName})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			telemetry.Error("api.server_failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			telemetry.Error("api.shutdown_failed", map[string]any{"error": err.Error()})
		}
		telemetry.Info("api.stopped", nil)
	}
}
