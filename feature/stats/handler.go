package stats

import (
	"errors"

	"match-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for statistics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stats")
	group.Get("/", h.HandleAll)
	group.Get("/:gameID", h.HandleForGame)
}

// HandleAll returns stats for every game.
// @Summary All Game Stats
// @Tags stats
// @Produce json
// @Success 200 {array} models.GameStats
// @Router /stats [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	all, err := h.service.All(c.Context())
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Stats computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(all)
}

// HandleForGame returns stats for one game.
// @Summary Game Stats
// @Tags stats
// @Produce json
// @Param gameID path int true "Game ID"
// @Success 200 {object} models.GameStats
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stats/{gameID} [get]
func (h *Handler) HandleForGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("gameID")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	gs, err := h.service.ForGame(c.Context(), uint(id))
	if errors.Is(err, ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Stats computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(gs)
}
