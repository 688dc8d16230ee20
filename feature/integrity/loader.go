package integrity

import (
	"networth/core/storage"
	"networth/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new integrity feature. Without a storage client only
// the market check is meaningful, so the feature disables itself.
func NewFeature(client storage.Client, bucket, prefix string, feeds []checks.Feed, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, prefix, feeds, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: client != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
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
