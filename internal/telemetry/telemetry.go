// Package telemetry unifies OpenTelemetry tracing and Prometheus metrics
// for the ad service.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	adRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adservice_requests_total",
			Help: "Total number of GetAds calls, labeled by selection path.",
		},
		[]string{"path"},
	)

	adsServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adservice_ads_served_total",
			Help: "Total number of ads returned to callers.",
		},
	)

	adRequestErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adservice_request_errors_total",
			Help: "Total number of GetAds calls terminated by a transport fault.",
		},
	)
)

// Selection path labels for ObserveRequest.
const (
	PathContextual = "contextual"
	PathRandom     = "random"
)

// ObserveRequest records one completed GetAds call and the ads it returned.
func ObserveRequest(path string, adsServed int) {
	adRequestsTotal.WithLabelValues(path).Inc()
	adsServedTotal.Add(float64(adsServed))
}

// ObserveRequestError records a call that ended without a response.
func ObserveRequestError() {
	adRequestErrorsTotal.Inc()
}

// Handler returns the standard Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
