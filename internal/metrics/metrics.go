// Package metrics defines the Prometheus collectors exposed on /metrics.
//
// Collectors live in their own package so both the middleware and the
// service layer can record into them without importing each other.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// AssociationMutations counts committed relation changes by owner side and action.
	AssociationMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cafe_tienda_association_mutations_total",
		Help: "Committed cafe/tienda association changes",
	}, []string{"owner", "action"})

	RateLimitHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limit_hits_total",
		Help: "Requests rejected by the rate limiter",
	})
)

// Register registers every collector on reg (or the default registerer if nil).
// Collectors already registered are not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	collectors := []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		AssociationMutations,
		RateLimitHits,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return err
			}
		}
	}
	return nil
}
