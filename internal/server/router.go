package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/alexiusacademia/gobbs/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options configure the HTTP API
type Options struct {
	Logger *zap.Logger

	// Registry receives the service metrics and backs /metrics. Nil
	// disables both.
	Registry *prometheus.Registry

	// Export holds the workbook template settings used by the export
	// endpoint
	Export export.Options
}

// NewRouter builds the HTTP API
func NewRouter(opts Options) (http.Handler, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{logger: logger, export: opts.Export}
	if opts.Registry != nil {
		c, err := metrics.NewCollector(opts.Registry)
		if err != nil {
			return nil, err
		}
		h.metrics = c
	}

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Health)
	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/schedules", func(r chi.Router) {
		r.Post("/", h.Schedules)
		r.Post("/export", h.Export)
	})

	return r, nil
}

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 5 * time.Second

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
