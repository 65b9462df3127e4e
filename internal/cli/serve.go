package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/pricewalk/internal/config"
	"github.com/aretw0/pricewalk/internal/metrics"
	httpAdapter "github.com/aretw0/pricewalk/pkg/adapters/http"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	GlobalOptions
	Addr string // Overrides server.addr when set
}

// RunServe starts the HTTP API and blocks until ctx is cancelled.
func RunServe(ctx context.Context, opts ServeOptions) error {
	cfg, logger, err := setup(opts.GlobalOptions)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}

	handler, closeStore, err := newServeHandler(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting pricewalk server", "addr", srv.Addr, "store", cfg.Store.Driver, "metrics", cfg.Server.MetricsPath)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("pricewalk server stopped gracefully")
		return nil
	}
}

// newServeHandler mounts the API next to the prometheus endpoint.
func newServeHandler(cfg config.Config, logger *slog.Logger, reg *prometheus.Registry) (http.Handler, func() error, error) {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(reg)

	engine, closeStore, err := newEngine(cfg, logger, collector.Hooks())
	if err != nil {
		return nil, nil, err
	}

	r := chi.NewRouter()
	if cfg.Server.MetricsPath != "" {
		r.Handle(cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	r.Mount("/", httpAdapter.NewHandler(engine))
	return r, closeStore, nil
}
