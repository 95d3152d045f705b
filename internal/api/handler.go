package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/report"
)

// Handler serves the rendered report documents. It only ever reads
// immutable documents from the store, never a dataset.
type Handler struct {
	store  *report.Store
	logger *zap.Logger
}

func NewHandler(store *report.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// ListReports handles GET /api/v1/reports
func (h *Handler) ListReports(c *fiber.Ctx) error {
	docs := h.store.List()
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return c.JSON(fiber.Map{
		"reports": names,
	})
}

// GetReport handles GET /api/v1/reports/:name
func (h *Handler) GetReport(c *fiber.Ctx) error {
	name := c.Params("name")
	doc, ok := h.store.Find(name)
	if !ok {
		h.logger.Warn("Report not found", zap.String("name", name))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
			"name":  name,
		})
	}

	h.logger.Info("Serving report", zap.String("name", name))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(doc.Body)
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"reports":   len(h.store.List()),
	})
}

var startTime = time.Now()
