package internal

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Payment forms issued, by result: ok|invalid|disabled
	paymentFormsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asiapay_payment_forms_total",
			Help: "Payment forms issued by result.",
		},
		[]string{"result"},
	)

	// Datafeed notifications by status (accepted|rejected) and bounded reason:
	// none|hash_mismatch|rejected|failed|medium_risk|high_risk|bad_request
	datafeedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asiapay_datafeed_total",
			Help: "Datafeed notifications by verification status and reason.",
		},
		[]string{"status", "reason"},
	)

	metricsOnce sync.Once
)

// RegisterMetrics registers the service collectors with the default registry exactly once.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(paymentFormsTotal, datafeedTotal)
	})
}
