package archive

import (
	"errors"

	"shop-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for archived runs.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
}

// HandleListRuns returns the most recent runs.
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	runs, err := h.repo.ListRuns(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.repo.logger, c).Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetRun returns one run with its ledgers.
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	run, err := h.repo.GetRun(c.Context(), c.Params("id"))
	if errors.Is(err, ErrRunNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.repo.logger, c).Error("Failed to load run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}
