package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cognia/internal/app"
)

var (
	analyzeOutput  string
	analyzeProfile string
	analyzeFull    bool
	analyzeNoChart bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Analyze a CSV or JSON dataset and write an HTML report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeNoChart {
			cfg.Render.Disabled = true
		}
		service, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		result, err := service.Analyze(cmd.Context(), app.AnalyzeRequest{
			Input:               args[0],
			Output:              analyzeOutput,
			Profile:             analyzeProfile,
			ShowFullCorrelation: analyzeFull,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Report written to %s (%d rows, %d columns)\n", result.OutputPath, result.Rows, result.Columns)
		if len(result.Alerts) > 0 {
			fmt.Printf("%d data quality alert(s):\n", len(result.Alerts))
			for _, a := range result.Alerts {
				fmt.Printf("  - %s\n", a)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "report output path (default cognia_eda_report.html)")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "analysis profile name from the profiles file")
	analyzeCmd.Flags().BoolVar(&analyzeFull, "show-full-correlation", false, "include the collapsible full heatmap for wide datasets")
	analyzeCmd.Flags().BoolVar(&analyzeNoChart, "no-charts", false, "skip chart rendering (no headless browser needed)")
	rootCmd.AddCommand(analyzeCmd)
}
