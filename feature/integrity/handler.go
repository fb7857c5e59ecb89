package integrity

import (
	"shop-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/workspace", h.HandleWorkspaceCheck)
	group.Get("/inputs", h.HandleInputsCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleIntegrityCheck runs every check. An unhealthy report is still a 200;
// callers read the healthy flag.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleWorkspaceCheck reports workspace reachability.
func (h *Handler) HandleWorkspaceCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckWorkspace(c.Context()))
}

// HandleInputsCheck verifies the input exports.
func (h *Handler) HandleInputsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckInputs(c.Context())
	if !report.Matched {
		l.Warn("Input exports failed validation")
	}
	return c.JSON(report)
}

// HandleArchiveCheck checks the archive schema.
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting archive schema check")

	report, err := h.service.CheckArchive()
	if err != nil {
		l.Error("Archive schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
