package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hms_page_requests_total",
		Help: "Pages served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hms_upstream_request_duration_seconds",
		Help:    "Latency of calls to the hospital API, by method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	upstreamUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hms_upstream_up",
		Help: "Whether the last hospital API availability check succeeded.",
	})
)

func CountPage(method, route string, status int) {
	pageRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveUpstream records one hospital API round trip. status is the HTTP
// status code, or "error" when the transport failed.
func ObserveUpstream(method, status string, d time.Duration) {
	upstreamDuration.WithLabelValues(method, status).Observe(d.Seconds())
}

func SetUpstreamUp(up bool) {
	if up {
		upstreamUp.Set(1)
	} else {
		upstreamUp.Set(0)
	}
}
