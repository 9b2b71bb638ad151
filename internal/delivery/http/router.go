package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthtrend/backend/internal/metrics"
	"github.com/healthtrend/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, analysisSvc *service.AnalysisService) {
	handler := NewHandler(analysisSvc)

	app.Use(requestMetrics)

	// Health and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/ready", handler.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/users/:userId/analysis", handler.GetUserAnalysis)
		api.Post("/analysis", handler.PostAnalysis)
	}
}

func requestMetrics(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
	}
	metrics.RequestsTotal.WithLabelValues(c.Route().Path, c.Method(), strconv.Itoa(status)).Inc()

	return err
}
