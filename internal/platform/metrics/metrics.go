// Package metrics provides Prometheus instrumentation for the trade engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PriceLookups counts unit price resolutions by source (live or fallback).
	PriceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_price_lookups_total",
		Help: "Unit price resolutions partitioned by source",
	}, []string{"source"})

	// RateLookups counts exchange rate resolutions by pair and source (live, cached or seed).
	RateLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_rate_lookups_total",
		Help: "Exchange rate resolutions partitioned by pair and source",
	}, []string{"pair", "source"})

	// SearchLookups counts instrument searches by source.
	SearchLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_search_lookups_total",
		Help: "Instrument searches partitioned by source",
	}, []string{"source"})

	// LedgerEntries counts appended ledger entries by kind.
	LedgerEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_ledger_entries_total",
		Help: "Ledger entries appended, by kind",
	}, []string{"kind"})

	// TradeLatency tracks how long mutating holding operations take.
	TradeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "asset_compass_trade_latency_seconds",
		Help:    "Holding operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Notifications counts trade confirmation outcomes (sent, failed, dropped).
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_notifications_total",
		Help: "Trade notifications by outcome",
	}, []string{"outcome"})

	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asset_compass_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "asset_compass_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"method", "route"})
)

// ObserveTrade records the latency of a holding operation started at start.
func ObserveTrade(operation string, start time.Time) {
	TradeLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware records request metrics. The route template is used as label to avoid high cardinality.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
