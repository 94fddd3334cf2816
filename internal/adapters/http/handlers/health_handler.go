package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	mode    string
	ping    func(ctx context.Context) error
	started time.Time
}

const pingTimeout = 2 * time.Second

// resources served under /api/v1
var resources = []string{"auth", "customers", "employees", "brands", "styles", "cars", "rentals", "returns"}

// NewHealthHandler creates a new health handler. ping checks the database.
func NewHealthHandler(mode string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{mode: mode, ping: ping, started: time.Now()}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "Car Rental API v1.0 is running",
		"mode":    h.mode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	status := fiber.StatusOK
	dbStatus := "healthy"
	if err := h.ping(ctx); err != nil {
		status = fiber.StatusServiceUnavailable
		dbStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.started).Truncate(time.Second).String(),
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}

// APIInfo lists the v1 resource collections
// @Summary API v1 Info
// @Description Returns API v1 version and resource collections
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Car Rental API v1.0",
		"version":   "1.0.0",
		"resources": resources,
	})
}
