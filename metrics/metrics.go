// Package metrics exposes Prometheus collectors for the HTTP layer and the
// id allocator.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	allocLookups     *prometheus.HistogramVec
	allocExhausted  *prometheus.CounterVec
	collisionRetry  *prometheus.CounterVec
	cropsSwept      prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agriadmin",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agriadmin",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		allocLookups: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agriadmin",
			Name:      "id_allocation_lookups",
			Help:      "Uniqueness lookups needed per allocated id.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 64},
		}, []string{"table"}),
		allocExhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agriadmin",
			Name:      "id_allocation_exhausted_total",
			Help:      "Allocations that ran out of attempts.",
		}, []string{"table"}),
		collisionRetry: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agriadmin",
			Name:      "id_collision_retries_total",
			Help:      "Inserts retried after a primary key collision.",
		}, []string{"table"}),
		cropsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agriadmin",
			Name:      "crops_deactivated_total",
			Help:      "Crops marked inactive by the harvest sweep.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.requestDuration, m.allocLookups, m.allocExhausted, m.collisionRetry, m.cropsSwept,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveAllocation implements storage.Observer.
func (m *Metrics) ObserveAllocation(table string, attempts int, exhausted bool) {
	m.allocLookups.WithLabelValues(table).Observe(float64(attempts))
	if exhausted {
		m.allocExhausted.WithLabelValues(table).Inc()
	}
}

// ObserveCollisionRetry implements storage.Observer.
func (m *Metrics) ObserveCollisionRetry(table string) {
	m.collisionRetry.WithLabelValues(table).Inc()
}

func (m *Metrics) CropsDeactivated(n int64) {
	m.cropsSwept.Add(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records one sample per request, labelled by the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
