package shopkeep

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the reports feature over svc, caching reports for the cache's TTL.
func NewFeature(svc *Service, cache *ReportCache) *Feature {
	return &Feature{handler: NewHandler(svc, cache)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "shopkeep"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
