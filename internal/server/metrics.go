package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rategen_http_requests_total",
			Help: "Total number of HTTP requests served by the preview server",
		},
		[]string{"endpoint", "status"},
	)

	rateRangesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rategen_rate_ranges_loaded",
			Help: "Number of compressed rate ranges in the served snapshot",
		},
	)

	blackoutDaysLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rategen_blackout_days_loaded",
			Help: "Number of blackout days in the served snapshot",
		},
	)
)
