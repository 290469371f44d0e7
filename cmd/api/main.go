package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/deephealth/internal/config"
	"github.com/hamed0406/deephealth/internal/health"
	"github.com/hamed0406/deephealth/internal/httpapi"
	"github.com/hamed0406/deephealth/internal/logging"
	"github.com/hamed0406/deephealth/internal/probe"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Bad target URLs are reported per check, so only warn here.
	for _, e := range multierr.Errors(cfg.Validate()) {
		logger.Warn("config_invalid", zap.Error(e))
	}

	targets := cfg.Targets()
	for _, t := range targets {
		logger.Info("target_configured", zap.String("service", t.Name), zap.String("url", t.URL))
	}

	agg := health.NewAggregator(logger, probe.NewHTTPChecker(probe.DefaultTimeout))
	api := httpapi.NewServer(logger, targets, agg)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, logger, srv); err != nil {
		logger.Error("api_listen_error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
// It returns nil after a clean shutdown.
func serve(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("api_listen", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api_shutdown_error", zap.Error(err))
	}
	<-errc
	logger.Info("api_stopped")
	return nil
}
