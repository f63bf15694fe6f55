package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cognia/internal/app"
	reporthttp "cognia/internal/transport/http"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report HTTP server",
	Long: `Serves run history and generated reports, and accepts analysis
requests via POST /api/analyze.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service, err := app.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}
		srv, err := reporthttp.NewServer(reporthttp.ServerConfig{Addr: addr, Service: service})
		if err != nil {
			return err
		}
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
