package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the server's Prometheus registry and the fridge metrics.
type Collector struct {
	registry *prometheus.Registry

	toolCalls     *prometheus.CounterVec
	itemsAdded    *prometheus.CounterVec
	fridgeItems   prometheus.Gauge
	wsConnections prometheus.Gauge
}

// NewCollector creates a collector with all fridge metrics registered on a
// private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frigo_tool_calls_total",
				Help: "MCP tool invocations by tool name and outcome",
			},
			[]string{"tool", "outcome"},
		),
		itemsAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frigo_items_added_total",
				Help: "Items added to the fridge by category",
			},
			[]string{"category"},
		),
		fridgeItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "frigo_fridge_items",
				Help: "Current number of items across all zones",
			},
		),
		wsConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "frigo_ws_connections",
				Help: "Currently connected widget WebSocket clients",
			},
		),
	}

	c.registry.MustRegister(c.toolCalls, c.itemsAdded, c.fridgeItems, c.wsConnections)
	return c
}

// Handler returns the HTTP handler serving this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordToolCall counts one MCP tool invocation.
func (c *Collector) RecordToolCall(tool, outcome string) {
	c.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// RecordItemAdded counts one successful add and updates the item gauge.
func (c *Collector) RecordItemAdded(category string, totalItems int) {
	c.itemsAdded.WithLabelValues(category).Inc()
	c.fridgeItems.Set(float64(totalItems))
}

// WSConnected tracks a widget client attaching.
func (c *Collector) WSConnected() {
	c.wsConnections.Inc()
}

// WSDisconnected tracks a widget client detaching.
func (c *Collector) WSDisconnected() {
	c.wsConnections.Dec()
}
