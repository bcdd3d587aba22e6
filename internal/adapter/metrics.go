package adapter

import (
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	opListUsers   = "list_users"
	opGetUser     = "get_user"
	opCreateUser  = "create_user"
	opAddLocation = "add_location"
)

// statusTransportError labels calls that never received a response.
const statusTransportError = "error"

// Metrics instruments outbound data API calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the data API collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "postgrest_requests_total",
			Help: "Data API requests by operation and HTTP status.",
		}, []string{"operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "postgrest_request_duration_seconds",
			Help:    "Data API request latency by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// observe records one call. A nil receiver is a no-op.
func (m *Metrics) observe(operation string, resp *resty.Response, err error, started time.Time) {
	if m == nil {
		return
	}

	status := statusTransportError
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode())
	}

	m.requests.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
