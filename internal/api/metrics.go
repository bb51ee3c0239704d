package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zapponejosh/patro-api/internal/calendar"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	conversions     *prometheus.CounterVec
	tableReloads    prometheus.Counter
	tableFirstYear  prometheus.Gauge
	tableLastYear   prometheus.Gauge
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patro_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "patro_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patro_conversions_total",
				Help: "Date conversions by direction and result (exact, approximate, error)",
			},
			[]string{"direction", "result"},
		),
		tableReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "patro_table_reloads_total",
			Help: "Number of times the conversion table was replaced",
		}),
		tableFirstYear: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "patro_table_first_year",
			Help: "First BS year covered by the conversion table",
		}),
		tableLastYear: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "patro_table_last_year",
			Help: "Last BS year covered by the conversion table",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.conversions,
		m.tableReloads,
		m.tableFirstYear,
		m.tableLastYear,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies by chi route pattern.
func (m *Metrics) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
			m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// Conversion directions used as label values.
const (
	directionADToBS = "ad_to_bs"
	directionBSToAD = "bs_to_ad"
)

func (m *Metrics) observeConversion(direction string, approximate bool, err error) {
	result := "exact"
	switch {
	case err != nil:
		result = "error"
	case approximate:
		result = "approximate"
	}
	m.conversions.WithLabelValues(direction, result).Inc()
}

// TableLoaded records the range of a newly installed table.
func (m *Metrics) TableLoaded(t *calendar.Table) {
	m.tableFirstYear.Set(float64(t.FirstYear()))
	m.tableLastYear.Set(float64(t.LastYear()))
}

func (m *Metrics) tableReloaded(t *calendar.Table) {
	m.tableReloads.Inc()
	m.TableLoaded(t)
}
