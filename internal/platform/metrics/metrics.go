package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// New registers on the default registry, so it must be called at most once per
// process; components treat a nil *Metrics as "metrics disabled".
type Metrics struct {
	UsersCreated          prometheus.Counter
	Logins                prometheus.Counter
	AuthFailures          prometheus.Counter
	ConversationsIngested prometheus.Counter
	WebhookRejected       prometheus.Counter
	EndpointLatency       *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atende_users_created_total",
			Help: "Total number of users registered",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atende_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atende_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		}),
		ConversationsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atende_conversations_ingested_total",
			Help: "Total number of conversations recorded via webhook",
		}),
		WebhookRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atende_webhook_rejected_total",
			Help: "Total number of webhook payloads rejected for insufficient data",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atende_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
