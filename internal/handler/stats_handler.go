package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/store"
	"github.com/lingora-app/lingora-api/internal/utils"
)

// StatsHandler wires the platform stats, activity feed and settings routes.
type StatsHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(domain *store.Store, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		store:  domain,
		logger: logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register attaches the stats and feed endpoints.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
	router.Get("/activities", h.activities)
	router.Get("/settings", h.settings)
}

func (h *StatsHandler) stats(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "stats retrieved", h.store.Stats(c.Context()))
}

func (h *StatsHandler) activities(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}

	return utils.SendSuccess(c, "activities retrieved", h.store.RecentActivities(c.Context(), limit))
}

func (h *StatsHandler) settings(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "settings retrieved", h.store.Settings(c.Context()))
}
