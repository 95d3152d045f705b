// Package cmd wires the CLI commands for the weather-reports tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "weather-reports",
	Short: "Analytical reports over a month of weather station readings",
	Long: `weather-reports downloads a month of weather station readings,
builds an in-memory dataset and produces a fixed set of analytical
reports: the most common hottest time of day, the monthly average of
that time, the ten hottest distinct days, a hi/low threshold filter
over early June, and a synthesized July forecast derived from June.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// newLogger builds the process logger and installs it globally so packages
// without an injected logger (config parsing) can still report problems.
func newLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
