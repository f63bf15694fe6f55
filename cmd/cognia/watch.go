package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cognia/internal/app"
	"cognia/internal/watch"
)

var (
	watchOutDir   string
	watchProfile  string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and re-analyze datasets as they change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service, err := app.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		w, err := watch.New(service, args[0], watchOutDir, watchProfile, watchDebounce)
		if err != nil {
			return err
		}
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutDir, "out-dir", "o", "", "directory for generated reports (default next to each dataset)")
	watchCmd.Flags().StringVar(&watchProfile, "profile", "", "analysis profile name from the profiles file")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "settle time before re-analyzing a changed file")
	rootCmd.AddCommand(watchCmd)
}
