package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/alexiusacademia/gobbs/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schedule calculations over HTTP",
	Long: `Start an HTTP API computing and exporting bar bending schedules.

Endpoints:
  POST /api/v1/schedules                 parameter document in, schedule JSON out
  POST /api/v1/schedules/export?format=  parameter document in, file out
  GET  /healthz                          liveness
  GET  /metrics                          Prometheus metrics

Send YAML with Content-Type: application/yaml, JSON otherwise.

Examples:
  gobbs serve
  gobbs serve --addr 127.0.0.1:9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides settings)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	opts := server.Options{
		Logger: logger,
		Export: export.Options{
			Template:   cfg.Export.Template,
			Sheet:      cfg.Export.Sheet,
			HeaderRows: cfg.Export.HeaderRows,
		},
	}
	if cfg.Server.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Registry = reg
	}

	router, err := server.NewRouter(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, addr, router, logger)
}
