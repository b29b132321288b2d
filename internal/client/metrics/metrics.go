// Package metrics holds the Prometheus collectors of the SocialNet client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_api_requests_total",
			Help: "Total number of requests sent to the SocialNet API",
		},
		[]string{"code", "method"},
	)

	APIRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "socialnet_api_requests_in_flight",
			Help: "Number of API requests currently waiting for a response",
		},
	)

	APIRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)

	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_session_events_total",
			Help: "Session lifecycle events by kind and outcome",
		},
		[]string{"event", "outcome"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_uploads_total",
			Help: "Image uploads by final state",
		},
		[]string{"outcome"},
	)

	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialnet_upload_bytes",
			Help:    "Size of accepted image uploads in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 4, 6),
		},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// InstrumentRoundTripper wraps next with request count, duration and
// in-flight collectors.
func InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperInFlight(APIRequestsInFlight,
		promhttp.InstrumentRoundTripperCounter(APIRequestsTotal,
			promhttp.InstrumentRoundTripperDuration(APIRequestDurationSeconds, next),
		),
	)
}

// ObserveSession records a session event such as "login" or "revalidate".
func ObserveSession(event string, err error) {
	SessionEventsTotal.WithLabelValues(event, outcome(err)).Inc()
}

// ObserveUpload records the final state of one upload attempt.
func ObserveUpload(size int, err error) {
	UploadsTotal.WithLabelValues(outcome(err)).Inc()
	if err == nil {
		UploadBytes.Observe(float64(size))
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
