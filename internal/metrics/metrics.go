package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	admissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rsvp_admissions_total",
			Help: "RSVP submissions by outcome",
		},
		[]string{"outcome"},
	)

	deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credential_deliveries_total",
			Help: "Credential email attempts by flow and result",
		},
		[]string{"flow", "result"},
	)

	deliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credential_delivery_duration_seconds",
			Help:    "Duration of credential email attempts",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"flow"},
	)

	scans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkin_scans_total",
			Help: "Credential scans by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)

	inflight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credential_deliveries_inflight",
			Help: "Credential deliveries currently running",
		},
	)
)

func TrackAdmission(outcome string) {
	admissions.WithLabelValues(outcome).Inc()
}

func TrackDelivery(flow, result string, took time.Duration) {
	deliveries.WithLabelValues(flow, result).Inc()
	deliveryDuration.WithLabelValues(flow).Observe(took.Seconds())
}

func TrackScan(flow, outcome string) {
	scans.WithLabelValues(flow, outcome).Inc()
}

// DeliveryStarted increments the in-flight gauge and returns the matching decrement.
func DeliveryStarted() func() {
	inflight.Inc()
	return inflight.Dec
}
