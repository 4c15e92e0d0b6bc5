// Package metrics exposes the panel's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

const namespace = "botpanel"

// Registry holds all panel metrics. Each Registry owns its own
// prometheus.Registry, so several servers can live in one process.
type Registry struct {
	reg *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Panel metrics
	LogEntries *prometheus.CounterVec
	BotStatus  *prometheus.GaugeVec
	Restarts   prometheus.Counter
}

// New creates a registry with every collector registered.
func New() *Registry {
	r := &Registry{reg: prometheus.NewRegistry()}
	factory := promauto.With(r.reg)

	r.HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total API requests by method, route and status",
	}, []string{"method", "route", "status"})

	r.HTTPLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "API request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.LogEntries = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_entries_total",
		Help:      "Activity log entries written, by level",
	}, []string{"level"})

	r.BotStatus = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bot_status",
		Help:      "1 for the current bot status, 0 otherwise",
	}, []string{"status"})

	r.Restarts = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bot_restarts_total",
		Help:      "Completed bot restarts",
	})

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveRequest records one finished API request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLog counts a stored log entry.
func (r *Registry) ObserveLog(entry models.LogEntry) {
	r.LogEntries.WithLabelValues(string(entry.Level)).Inc()
}

// SetBotStatus marks status as the current one.
func (r *Registry) SetBotStatus(status models.BotStatus) {
	for _, s := range models.AllBotStatuses {
		value := 0.0
		if s == status {
			value = 1
		}
		r.BotStatus.WithLabelValues(string(s)).Set(value)
	}
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
