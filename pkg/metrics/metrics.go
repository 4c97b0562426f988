// Package metrics exposes Prometheus instrumentation for the harvesting
// pipeline. Init must run once before any counter is touched; packages
// under pkg/ never import this so library tests stay metrics-free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PagesFetchedTotal *prometheus.CounterVec
	FrontierSize      prometheus.Gauge
	ExtractionsTotal  *prometheus.CounterVec
	IngestsTotal      *prometheus.CounterVec
	CrawlDuration     *prometheus.HistogramVec
)

func Init() {
	PagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_fetched_total",
			Help: "Total pages fetched during crawls.",
		},
		[]string{"outcome"}, // success, failure, skipped
	)

	FrontierSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "frontier_size",
			Help: "Current number of URLs waiting in the crawl frontier.",
		},
	)

	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractions_total",
			Help: "Total extraction attempts by strategy and outcome.",
		},
		[]string{"method", "outcome"},
	)

	IngestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingests_total",
			Help: "Total catalog ingestion attempts by outcome.",
		},
		[]string{"outcome"}, // created, updated, duplicate, invalid
	)

	CrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crawl_duration_seconds",
			Help:    "Duration of complete crawl runs.",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"domain"},
	)
}
