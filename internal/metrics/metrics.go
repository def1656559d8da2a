package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitchweather_dataset_reloads_total",
			Help: "Dataset reload attempts by outcome",
		},
		[]string{"status"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pitchweather_dataset_rows",
			Help: "Rows currently loaded, by table (weather, matches, merged)",
		},
		[]string{"table"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitchweather_http_requests_total",
			Help: "HTTP requests served, by path and status code",
		},
		[]string{"path", "status"},
	)

	FilterQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pitchweather_filter_queries_total",
			Help: "Filtered API queries served",
		},
	)
)
