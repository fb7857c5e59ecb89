package shopkeep

import (
	"bytes"
	"errors"
	"strings"

	"shop-audit/core/logger"
	"shop-audit/core/reconcile"
	"shop-audit/core/tabular"
	"shop-audit/core/workspace"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation reports.
type Handler struct {
	service *Service
	cache   *ReportCache
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cache *ReportCache) *Handler {
	return &Handler{service: service, cache: cache}
}

// RegisterRoutes registers the report and stock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	reports := app.Group("/reports")
	reports.Get("/summary", h.HandleSummary)
	reports.Get("/items", h.HandleItems)
	reports.Get("/orders", h.HandleOrders)
	reports.Get("/totals", h.HandleTotals)
	reports.Post("/refresh", h.HandleRefresh)

	app.Get("/stock/lookup", h.HandleStockLookup)
}

// HandleSummary returns the counts of the latest run.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	res, err := h.cache.Get(c.Context())
	if err != nil {
		return h.fail(c, "Failed to build report", err)
	}
	return c.JSON(fiber.Map{
		"id":         res.ID,
		"started_at": res.StartedAt,
		"summary":    res.Report.Summary,
	})
}

// HandleItems returns the per-line report as JSON, or as a file with ?format=csv|xlsx.
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	res, err := h.cache.Get(c.Context())
	if err != nil {
		return h.fail(c, "Failed to build report", err)
	}
	return h.respond(c, res.Report.Items, ItemSheet(res.Report.Items), h.service.files.ItemReport)
}

// HandleOrders returns the per-order report.
func (h *Handler) HandleOrders(c *fiber.Ctx) error {
	res, err := h.cache.Get(c.Context())
	if err != nil {
		return h.fail(c, "Failed to build report", err)
	}
	return h.respond(c, res.Report.Orders, OrderSheet(res.Report.Orders), h.service.files.OrderReport)
}

// HandleTotals returns the merged quantity ledger.
func (h *Handler) HandleTotals(c *fiber.Ctx) error {
	res, err := h.cache.Get(c.Context())
	if err != nil {
		return h.fail(c, "Failed to build report", err)
	}
	return h.respond(c, res.Report.Totals, TotalsSheet(res.Report.Totals), h.service.files.TotalsReport)
}

// HandleRefresh discards the cached report and rebuilds it from the workspace.
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	res, err := h.cache.Refresh(c.Context())
	if err != nil {
		return h.fail(c, "Failed to rebuild report", err)
	}
	logger.WithRayID(h.service.logger, c).Info("Report refreshed", zap.String("run_id", res.ID))
	return c.JSON(fiber.Map{
		"id":         res.ID,
		"started_at": res.StartedAt,
		"summary":    res.Report.Summary,
	})
}

// HandleStockLookup resolves one catalog entry by ?sku= and/or ?name=.
func (h *Handler) HandleStockLookup(c *fiber.Ctx) error {
	sku, name := c.Query("sku"), c.Query("name")
	if strings.TrimSpace(sku) == "" && strings.TrimSpace(name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sku or name is required"})
	}

	rec, err := h.service.Lookup(c.Context(), sku, name)
	var lookupErr *reconcile.LookupError
	if errors.As(err, &lookupErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Stock lookup failed", err)
	}
	return c.JSON(rec)
}

func (h *Handler) respond(c *fiber.Ctx, rows interface{}, sheet tabular.Sheet, filename string) error {
	raw := c.Query("format")
	if raw == "" || strings.EqualFold(raw, "json") {
		return c.JSON(rows)
	}

	format, err := tabular.ParseFormat(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := sheet.Write(&buf, format); err != nil {
		return h.fail(c, "Failed to render report", err)
	}
	c.Attachment(workspace.ReportFile(filename, string(format)))
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
