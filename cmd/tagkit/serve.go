package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tagkit-dev/tagkit/internal/config"
	"github.com/tagkit-dev/tagkit/internal/preview"
)

func serveCmd() *cobra.Command {
	var port int
	var host string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery page locally",
		Long: `Serve starts the preview server. The gallery page is rendered per
request, so edits to the configuration show up on reload. Prometheus
metrics are exposed on /metrics unless disabled in tagkit.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			printBanner()
			info("preview at http://%s", cfg.Addr())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return preview.NewServer(cfg, logger).Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides tagkit.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (overrides tagkit.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
