package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60},
		},
	)

	totalHttpRequestsToRoute = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_route", Help: "http requests by registered route"},
		[]string{"code", "route", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	routeMisses = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_misses_total", Help: "requests that matched no registered route"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsToRoute,
		totalHttpRequests,
		routeMisses,
	)
}

// ObserveMiss counts one request that fell through to the not-found response.
func ObserveMiss() { routeMisses.Inc() }
