package game

import (
	"errors"

	"match-tracker/core/logger"
	"match-tracker/feature/game/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for games.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the game routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/games")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Patch("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns all games.
// @Summary List Games
// @Tags games
// @Produce json
// @Success 200 {array} models.Game
// @Router /games [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	games, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(games)
}

// HandleGet returns one game.
// @Summary Get Game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string "Not Found"
// @Router /games/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	g, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(g)
}

// HandleCreate creates a game.
// @Summary Create Game
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.GameCreate true "Game"
// @Success 200 {object} models.Game
// @Router /games [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in models.GameCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	g, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(g)
}

// HandleUpdate updates a game.
// @Summary Update Game
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body models.GameUpdate true "Fields to update"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string "Not Found"
// @Router /games/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in models.GameUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	g, err := h.service.Update(c.Context(), uint(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(g)
}

// HandleDelete deletes a game.
// @Summary Delete Game
// @Tags games
// @Param id path int true "Game ID"
// @Success 204
// @Failure 400 {object} map[string]string "Game In Use"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /games/{id} [delete]
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
		l.Error("Game request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
