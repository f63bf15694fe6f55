package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cognia/internal/config"
	"cognia/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cognia",
	Short: "Automated exploratory data analysis for CSV and JSON datasets",
	Long: `Cognia profiles tabular datasets and produces a self-contained HTML
report: summary statistics, distribution interpretation, outlier and
missing-value analysis, correlation ranking and rendered charts.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yaml, or COGNIA_CONFIG)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func loadConfig() {
	path := cfgFile
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path == "" {
		path = "configs/config.yaml"
	}

	if _, err := os.Stat(path); err != nil {
		if cfgFile != "" {
			fmt.Fprintf(os.Stderr, "error: config file %s not found\n", cfgFile)
			os.Exit(1)
		}
		cfg = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	setupLogging()
}

func setupLogging() {
	level := cfg.App.LogLevel
	if flagLevel, _ := rootCmd.PersistentFlags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	logger.SetLevel(level)

	if path := strings.TrimSpace(cfg.App.LogPath); path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "error: create log dir: %v\n", err)
				os.Exit(1)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log file: %v\n", err)
			os.Exit(1)
		}
		logger.SetOutput(f)
	}
}
