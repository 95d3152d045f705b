package services

import (
	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/models"
)

// Thresholds for the early-June hi/low interval report.
const (
	HiTemperatureToCompare  = 22.3
	HiTemperatureDelta      = 1.0
	LowTemperatureToCompare = 10.3
	LowTemperatureDelta     = 0.2
)

// DefaultForecastTarget is the July average temperature the synthesized
// forecast is constructed to hit when none is configured.
const DefaultForecastTarget = 25.0

// Reporter runs the analytical reports over one dataset. Reads may begin
// only after ingestion has finished; JulyForecast is the single remaining
// mutator and must not overlap other calls.
type Reporter struct {
	dataset        *models.Dataset
	logger         *zap.Logger
	forecastTarget float64
}

func NewReporter(dataset *models.Dataset, forecastTarget float64, logger *zap.Logger) *Reporter {
	if forecastTarget == 0 {
		forecastTarget = DefaultForecastTarget
	}
	return &Reporter{
		dataset:        dataset,
		logger:         logger,
		forecastTarget: forecastTarget,
	}
}

// Dataset exposes the underlying dataset, mainly for tests and callers that
// need raw counts for logging.
func (r *Reporter) Dataset() *models.Dataset {
	return r.dataset
}
