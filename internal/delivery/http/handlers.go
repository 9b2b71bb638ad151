package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/healthtrend/backend/internal/analysis"
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	analysisSvc *service.AnalysisService
}

// NewHandler creates a new handler
func NewHandler(analysisSvc *service.AnalysisService) *Handler {
	return &Handler{analysisSvc: analysisSvc}
}

// AnalysisRequest is the body of a stateless analysis request
type AnalysisRequest struct {
	analysis.Input
	TimeRange string `json:"timeRange"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "healthtrend-backend",
		"version": "1.0.0",
	})
}

// Ready reports whether the record source is reachable
func (h *Handler) Ready(c *fiber.Ctx) error {
	if err := h.analysisSvc.Ready(c.UserContext()); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Record source unavailable")
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// GetUserAnalysis analyzes a stored user's records
func (h *Handler) GetUserAnalysis(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing user id")
	}

	timeRange := c.Query("timeRange", domain.TimeRangeSixMonths)

	resp := h.analysisSvc.Analyze(c.UserContext(), userID, timeRange)
	if !resp.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return c.JSON(resp)
}

// PostAnalysis analyzes records posted in the request body
func (h *Handler) PostAnalysis(c *fiber.Ctx) error {
	var req AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp := h.analysisSvc.AnalyzeInput(c.UserContext(), req.Input, req.TimeRange)
	return c.JSON(resp)
}

// ErrorHandler renders errors as {error, message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
