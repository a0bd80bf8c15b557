package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersImported         prometheus.Counter
	ImportBatchesRejected prometheus.Counter
	Registrations         prometheus.Counter
	NotificationsSent     prometheus.Counter
	NotificationsFailed   prometheus.Counter
	HTTPRequests          *prometheus.CounterVec
}

// New creates and registers all metrics with the given registerer. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersImported: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventattend_users_imported_total",
			Help: "Total number of users created through bulk import",
		}),
		ImportBatchesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventattend_import_batches_rejected_total",
			Help: "Total number of import batches rejected by validation",
		}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventattend_registrations_total",
			Help: "Total number of single-path user registrations",
		}),
		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventattend_notifications_sent_total",
			Help: "Total number of confirmation emails sent",
		}),
		NotificationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventattend_notifications_failed_total",
			Help: "Total number of confirmation emails that failed to send",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eventattend_http_requests_total",
			Help: "Total number of HTTP requests by method, path pattern, and status",
		}, []string{"method", "path", "status"}),
	}
}
