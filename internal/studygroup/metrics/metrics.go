package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the study group module.
// Tracks admission outcomes, operation latency and notification delivery.
type Metrics struct {
	Operations         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	AdmissionsRejected *prometheus.CounterVec
	TxRetries          prometheus.Counter
	Notifications      *prometheus.CounterVec
}

// New registers all study group metrics with the default registry.
// Call once per process.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics with reg. Tests pass a fresh registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "studyhub_admission_operations_total",
			Help: "Admission operations by operation and result code",
		}, []string{"operation", "result"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "studyhub_admission_operation_duration_seconds",
			Help:    "Duration of admission operations including the transaction",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		AdmissionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "studyhub_admissions_rejected_total",
			Help: "Joins and approvals refused because the group was full",
		}, []string{"operation"}),
		TxRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "studyhub_tx_retries_total",
			Help: "Transactions retried after a serialization failure or deadlock",
		}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "studyhub_notifications_total",
			Help: "Notifications by kind and delivery outcome",
		}, []string{"kind", "outcome"}),
	}
}

// ObserveOperation records one service call. result is "ok" or an error code.
func (m *Metrics) ObserveOperation(operation, result string, start time.Time) {
	m.Operations.WithLabelValues(operation, result).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementGroupFull(operation string) {
	m.AdmissionsRejected.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementTxRetry() {
	m.TxRetries.Inc()
}

func (m *Metrics) NotificationDelivered(kind string) {
	m.Notifications.WithLabelValues(kind, "delivered").Inc()
}

func (m *Metrics) NotificationFailed(kind string) {
	m.Notifications.WithLabelValues(kind, "failed").Inc()
}

// NotificationFellBack counts notices that only reached the log fallback.
func (m *Metrics) NotificationFellBack(kind string) {
	m.Notifications.WithLabelValues(kind, "fallback").Inc()
}

func (m *Metrics) NotificationDropped(kind string) {
	m.Notifications.WithLabelValues(kind, "dropped").Inc()
}
