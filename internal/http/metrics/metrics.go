package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentaid_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rentaid_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds.",
		},
		[]string{"method", "route"},
	)

	ErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rentaid_http_errors_total",
			Help: "Total number of 5xx HTTP responses.",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
