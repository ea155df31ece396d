package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantenwijzer_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plantenwijzer_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path"})
)

// Dataset metrics
var (
	DatasetLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantenwijzer_dataset_loads_total",
		Help: "Total number of dataset load attempts",
	}, []string{"status"})

	DatasetLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "plantenwijzer_dataset_loaded",
		Help: "Dataset state (1=loaded, 0=not loaded or failed)",
	})

	DatasetPlants = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "plantenwijzer_dataset_plants",
		Help: "Number of plants in the loaded dataset",
	})

	DatasetLookupEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plantenwijzer_dataset_lookup_entries",
		Help: "Number of entries per lookup table",
	}, []string{"table"})
)

// Catalog interaction counters
var (
	FilteredRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantenwijzer_filtered_renders_total",
		Help: "Catalog renders with an active filter, by category",
	}, []string{"category"})

	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantenwijzer_lookups_total",
		Help: "Postal-code lookups by popup and outcome",
	}, []string{"kind", "outcome"})

	PlaceholdersRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plantenwijzer_placeholders_rendered_total",
		Help: "Total number of generated placeholder images",
	})
)

// Lookup outcomes
const (
	LookupFound        = "found"
	LookupFallback     = "fallback"
	LookupMissingInput = "missing_input"
)

// NormalizePath reduces high-cardinality path labels. Only a handful of
// routes exist; anything else is collapsed so scanners can't blow up the
// label space.
func NormalizePath(path string) string {
	// Static assets - collapse into one label
	if strings.HasPrefix(path, "/static/") {
		return "/static/*"
	}

	switch path {
	case "/", "/lookup/soil", "/lookup/moisture", "/placeholder.png",
		"/healthz", "/readyz", "/metrics":
		return path
	}
	return "other"
}
