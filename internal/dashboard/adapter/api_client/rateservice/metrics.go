package rateservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fxdash",
			Subsystem: "rate_service",
			Name:      "requests_total",
			Help:      "Requests sent to the remote rate service by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fxdash",
			Subsystem: "rate_service",
			Name:      "request_duration_seconds",
			Help:      "Latency of remote rate service requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// observe is a no-op on a nil receiver so the client works without metrics.
func (m *Metrics) observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
