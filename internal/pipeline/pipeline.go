// Package pipeline ties download, ingestion and reporting into one batch
// run. Every run builds its own dataset and registry, so independent runs
// never share state.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/config"
	"github.com/dkozlov-dev/weather-reports/internal/ingest"
	"github.com/dkozlov-dev/weather-reports/internal/models"
	"github.com/dkozlov-dev/weather-reports/internal/report"
	"github.com/dkozlov-dev/weather-reports/internal/services"
	"github.com/dkozlov-dev/weather-reports/pkg/client"
)

type Pipeline struct {
	cfg        *config.Config
	downloader *client.Downloader
	logger     *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Pipeline {
	downloader := client.NewDownloader("weather-csv", client.Config{
		Timeout:        10 * time.Second,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}, logger)

	return &Pipeline{
		cfg:        cfg,
		downloader: downloader,
		logger:     logger,
	}
}

// Run downloads the dataset (best effort), ingests it and renders the
// report documents from a fresh Reporter.
func (p *Pipeline) Run(ctx context.Context) ([]report.Document, error) {
	if err := p.downloader.FetchToFile(ctx, p.cfg.Source.URL, p.cfg.Source.DataFile); err != nil {
		// A stale local copy is still usable; ingestion fails below if
		// there is none.
		p.logger.Warn("Download failed, falling back to local data file",
			zap.String("url", p.cfg.Source.URL),
			zap.Error(err))
	}

	rows, err := ingest.ReadFile(p.cfg.Source.DataFile)
	if err != nil {
		return nil, err
	}
	dataset, err := models.BuildDataset(rows)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Dataset built",
		zap.Int("days", len(dataset.Days())),
		zap.Int("snippets", len(dataset.Snippets())))

	rep := services.NewReporter(dataset, p.cfg.Forecast.TargetAverage, p.logger)
	return report.BuildAll(rep, p.cfg.Output.FilePattern)
}
