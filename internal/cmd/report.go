package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/config"
	"github.com/dkozlov-dev/weather-reports/internal/pipeline"
	"github.com/dkozlov-dev/weather-reports/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the pipeline once and write the report files",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		return err
	}

	docs, err := pipeline.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		logger.Error("Pipeline run failed", zap.Error(err))
		return err
	}

	if err := report.NewWriter(cfg.Output.Dir, logger).Write(docs); err != nil {
		logger.Error("Failed to write reports", zap.Error(err))
		return err
	}
	return nil
}
