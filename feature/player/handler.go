package player

import (
	"errors"

	"match-tracker/core/logger"
	"match-tracker/feature/player/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for players.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the player routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/players")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Patch("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns all players.
// @Summary List Players
// @Tags players
// @Produce json
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	players, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(players)
}

// HandleGet returns one player.
// @Summary Get Player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleCreate creates a player.
// @Summary Create Player
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.PlayerCreate true "Player"
// @Success 200 {object} models.Player
// @Router /players [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in models.PlayerCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleUpdate updates a player.
// @Summary Update Player
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body models.PlayerUpdate true "Fields to update"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in models.PlayerUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.service.Update(c.Context(), uint(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleDelete deletes a player.
// @Summary Delete Player
// @Tags players
// @Param id path int true "Player ID"
// @Success 204
// @Failure 400 {object} map[string]string "Player In Use"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [delete]
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
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInUse), errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Player request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
