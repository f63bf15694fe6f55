package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cognia/internal/app"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		store := service.Runs()
		if store == nil {
			return fmt.Errorf("run history is disabled in config")
		}
		runs, err := store.List(runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %-9s  %-30s  %dx%d  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Status, r.Dataset, r.Rows, r.Columns, r.OutputPath)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}
