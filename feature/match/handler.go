package match

import (
	"errors"

	"match-tracker/core/logger"
	"match-tracker/feature/match/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for matches.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the match routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/matches")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Patch("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns matches with game and winner names, newest first.
// @Summary List Matches
// @Tags matches
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows" default(100)
// @Success 200 {array} models.MatchWithDetails
// @Router /matches [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	matches, err := h.service.List(c.Context(), skip, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(matches)
}

// HandleGet returns one match.
// @Summary Get Match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	m, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m)
}

// HandleCreate records a match.
// @Summary Record Match
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.MatchCreate true "Match"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string "Game or Player Not Found"
// @Router /matches [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in models.MatchCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	m, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m)
}

// HandleUpdate updates a match.
// @Summary Update Match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.MatchUpdate true "Fields to update"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in models.MatchUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	m, err := h.service.Update(c.Context(), uint(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m)
}

// HandleDelete deletes a match.
// @Summary Delete Match
// @Tags matches
// @Param id path int true "Match ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrGameNotFound), errors.Is(err, ErrPlayerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Match request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
