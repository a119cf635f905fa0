package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the service's Prometheus collectors.
type Metrics struct {
	Moves          *prometheus.CounterVec
	Resets         prometheus.Counter
	Rejected       *prometheus.CounterVec
	GamesFinished  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	Clients        prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "connectfour",
			Name:      "moves_total",
			Help:      "Moves applied, by mover.",
		}, []string{"mover"}),
		Resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "connectfour",
			Name:      "resets_total",
			Help:      "Games reset.",
		}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "connectfour",
			Name:      "rejected_requests_total",
			Help:      "Requests rejected, by reason.",
		}, []string{"reason"}),
		GamesFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "connectfour",
			Name:      "games_finished_total",
			Help:      "Finished games, by winner.",
		}, []string{"winner"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "connectfour",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		Clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "connectfour",
			Name:      "websocket_clients",
			Help:      "Open WebSocket connections.",
		}),
	}
}
