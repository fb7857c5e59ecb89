package metrics

import (
	"strconv"
	"time"

	"shop-audit/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Recorder holds the collectors shared by the CLI and the server.
type Recorder struct {
	RunsTotal            *prometheus.CounterVec
	RunDuration          prometheus.Histogram
	OrderLinesTotal      prometheus.Counter
	UnresolvedLinesTotal prometheus.Counter
	ItemMismatchesTotal  prometheus.Counter
	OrderMismatchesTotal prometheus.Counter
	LedgerEntries        prometheus.Gauge
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reconcile_runs_total",
			Help: "Total number of reconciliation runs",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "reconcile_run_duration_seconds",
			Help:    "Duration of reconciliation runs including input loading",
			Buckets: prometheus.DefBuckets,
		}),
		OrderLinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reconcile_order_lines_total",
			Help: "Total number of order lines reconciled",
		}),
		UnresolvedLinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reconcile_unresolved_lines_total",
			Help: "Total number of order lines with no stock entry",
		}),
		ItemMismatchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reconcile_item_mismatches_total",
			Help: "Total number of order lines whose reported total differs from stock price times quantity",
		}),
		OrderMismatchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reconcile_order_mismatches_total",
			Help: "Total number of orders whose reported total differs from the expected total",
		}),
		LedgerEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "reconcile_ledger_entries",
			Help: "Number of items in the last merged quantity ledger",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// RecordRun counts a finished run. A nil summary records a failure.
func (r *Recorder) RecordRun(summary *reconcile.Summary, elapsed time.Duration) {
	r.RunDuration.Observe(elapsed.Seconds())
	if summary == nil {
		r.RunsTotal.WithLabelValues(StatusFailed).Inc()
		return
	}
	r.RunsTotal.WithLabelValues(StatusSuccess).Inc()
	r.OrderLinesTotal.Add(float64(summary.OrderLines))
	r.UnresolvedLinesTotal.Add(float64(summary.UnresolvedLines))
	r.ItemMismatchesTotal.Add(float64(summary.ItemMismatches))
	r.OrderMismatchesTotal.Add(float64(summary.OrderMismatches))
	r.LedgerEntries.Set(float64(summary.LedgerEntries))
}

// Middleware collects request counts and latency per route.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		r.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		r.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
