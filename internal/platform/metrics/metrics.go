package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Logins          prometheus.Counter
	AuthFailures    prometheus.Counter
	EndpointLatency *prometheus.HistogramVec

	// Confirmation metrics
	Confirmations        prometheus.Counter
	ConfirmationConflict prometheus.Counter
	UnknownGroup         prometheus.Counter

	// Receipt metrics
	ReceiptsSent    prometheus.Counter
	ReceiptsFailed  prometheus.Counter
	ReceiptsDropped prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_logins_total",
			Help: "Total number of successful admin logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petitionpay_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		Confirmations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_confirmations_total",
			Help: "Total number of successful payment confirmations",
		}),
		ConfirmationConflict: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_confirmation_conflicts_total",
			Help: "Total number of confirmation attempts that hit the conflict outcome",
		}),
		UnknownGroup: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_unknown_petitioner_group_total",
			Help: "Total number of confirmations for petitioners with an unrecognized group",
		}),
		ReceiptsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_receipts_sent_total",
			Help: "Total number of receipt emails sent",
		}),
		ReceiptsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_receipts_failed_total",
			Help: "Total number of receipt emails that failed to send",
		}),
		ReceiptsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "petitionpay_receipts_dropped_total",
			Help: "Total number of receipts dropped because the notification queue was full",
		}),
	}
}

// The increment helpers tolerate a nil receiver so tests can wire services
// without registering collectors on the global registry.

// IncrementLogins increments the successful login counter by 1.
func (m *Metrics) IncrementLogins() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}

func (m *Metrics) IncrementAuthFailures() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}

func (m *Metrics) IncrementConfirmations() {
	if m == nil {
		return
	}
	m.Confirmations.Inc()
}

func (m *Metrics) IncrementConfirmationConflicts() {
	if m == nil {
		return
	}
	m.ConfirmationConflict.Inc()
}

func (m *Metrics) IncrementUnknownGroup() {
	if m == nil {
		return
	}
	m.UnknownGroup.Inc()
}

func (m *Metrics) IncrementReceiptsSent() {
	if m == nil {
		return
	}
	m.ReceiptsSent.Inc()
}

func (m *Metrics) IncrementReceiptsFailed() {
	if m == nil {
		return
	}
	m.ReceiptsFailed.Inc()
}

func (m *Metrics) IncrementReceiptsDropped() {
	if m == nil {
		return
	}
	m.ReceiptsDropped.Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
