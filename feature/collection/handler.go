package collection

import (
	"errors"

	"match-tracker/core/logger"
	"match-tracker/feature/collection/bgg"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for collection sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")
	group.Post("/sync", h.HandleStartSync)
}

// HandleStartSync runs one collection sync end-to-end.
// @Summary Sync BGG Collection
// @Description Fetches the configured user's BoardGameGeek collection and reconciles it into the local games table. Only one sync may run at a time.
// @Tags collection
// @Accept json
// @Produce json
// @Success 200 {object} models.SyncReport "Sync Report"
// @Failure 401 {object} map[string]string "BGG Credentials Rejected"
// @Failure 409 {object} map[string]string "Sync Already Running"
// @Failure 502 {object} map[string]string "BGG Unavailable"
// @Router /collection/sync [post]
func (h *Handler) HandleStartSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Run(c.Context())
	switch {
	case errors.Is(err, ErrSyncInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "a collection sync is already running",
		})
	case errors.Is(err, bgg.ErrAuthRejected):
		l.Error("Collection sync rejected by BGG", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, bgg.ErrRemoteUnavailable):
		l.Error("BGG unavailable", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		l.Error("Collection sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
