package collection

import (
	"match-tracker/core/storage"
	"match-tracker/feature/collection/bgg"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	service *Service
	handler *Handler
}

// NewFeature creates the collection sync feature. store may be nil when
// the thumbnail mirror is not configured.
func NewFeature(cfg bgg.Config, db *gorm.DB, store storage.Client, bucket string, logger *zap.Logger) *Feature {
	client := bgg.NewClient(cfg, logger)
	svc := NewService(client, db, store, bucket, logger)
	h := NewHandler(svc)
	return &Feature{enabled: cfg.IsEnabled(), service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "collection"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
