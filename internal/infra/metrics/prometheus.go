package metrics

import (
	"net/http"
	"strconv"
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records report builds and HTTP traffic.
type Collector struct {
	registry *prometheus.Registry

	reportDuration     *prometheus.HistogramVec
	reportsTotal       *prometheus.CounterVec
	aggregatorDuration *prometheus.HistogramVec
	aggregatorFailures *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var _ queries.ReportObserver = (*Collector)(nil)

// NewCollector registers every metric on a fresh registry, together with the Go and process collectors.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		reportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_duration_seconds",
				Help:      "Analytics report build duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"range"},
		),
		reportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_total",
				Help:      "Total number of analytics report builds",
			},
			[]string{"range", "status"},
		),
		aggregatorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregator_duration_seconds",
				Help:      "Duration of a single aggregator run in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"aggregator"},
		),
		aggregatorFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregator_failures_total",
				Help:      "Total number of failed aggregator runs",
			},
			[]string{"aggregator"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.reportDuration,
		c.reportsTotal,
		c.aggregatorDuration,
		c.aggregatorFailures,
		c.httpRequestsTotal,
		c.httpRequestDuration,
	)
	return c
}

func (c *Collector) ObserveReport(timeRange analytics.Range, duration time.Duration, err error) {
	c.reportDuration.WithLabelValues(timeRange.String()).Observe(duration.Seconds())
	c.reportsTotal.WithLabelValues(timeRange.String(), outcome(err)).Inc()
}

func (c *Collector) ObserveAggregator(name string, duration time.Duration, err error) {
	c.aggregatorDuration.WithLabelValues(name).Observe(duration.Seconds())
	if err != nil {
		c.aggregatorFailures.WithLabelValues(name).Inc()
	}
}

// ObserveHTTP takes the route template, not the raw URL, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, path string, status int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
