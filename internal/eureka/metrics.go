package eureka

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cohort_gateway",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Count of requests sent to the upstream API",
	}, []string{"method", "endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cohort_gateway",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution of upstream requests",
		Buckets:   histogramBuckets,
	}, []string{"method", "endpoint"})
)

// observe records one upstream round trip. Status zero means no response.
func observe(method, endpoint string, status int, d time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	requestTotal.With(prometheus.Labels{"method": method, "endpoint": endpoint, "status": code}).Inc()
	requestDuration.With(prometheus.Labels{"method": method, "endpoint": endpoint}).Observe(d.Seconds())
}
