package handlers

import (
	"empregos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles HTTP requests for aggregate board statistics.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// RegisterRoutes registers the stats routes with the Fiber app.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleOverview)
}

// HandleOverview returns the aggregate counts.
func (h *StatsHandler) HandleOverview(c *fiber.Ctx) error {
	stats, err := h.statsService.Overview()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
