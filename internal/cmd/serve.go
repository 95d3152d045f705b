package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkozlov-dev/weather-reports/internal/api"
	"github.com/dkozlov-dev/weather-reports/internal/config"
	"github.com/dkozlov-dev/weather-reports/internal/pipeline"
	"github.com/dkozlov-dev/weather-reports/internal/report"
	"github.com/dkozlov-dev/weather-reports/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reports over HTTP, refreshing them on a schedule",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting weather reports service")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		return err
	}

	p := pipeline.New(cfg, logger)
	store := &report.Store{}

	// Initial run so the server never starts empty.
	docs, err := p.Run(cmd.Context())
	if err != nil {
		logger.Error("Initial pipeline run failed", zap.Error(err))
		return err
	}
	store.Set(docs)
	if err := report.NewWriter(cfg.Output.Dir, logger).Write(docs); err != nil {
		logger.Error("Failed to write reports", zap.Error(err))
		return err
	}

	// Scheduled refreshes
	sched := scheduler.NewScheduler(p, store, cfg.Scheduler.RefreshSpec, logger)
	if err := sched.Start(); err != nil {
		logger.Error("Failed to start scheduler", zap.Error(err))
		return err
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "weather-reports",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          errorHandler,
	})

	handler := api.NewHandler(store, logger)
	api.SetupRoutes(app, handler)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
