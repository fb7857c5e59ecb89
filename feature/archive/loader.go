package archive

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
}

// NewFeature creates the archive feature. It is disabled when repo is nil.
func NewFeature(repo *Repository) *Feature {
	f := &Feature{repo: repo}
	if repo != nil {
		f.handler = NewHandler(repo)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil && f.repo.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
