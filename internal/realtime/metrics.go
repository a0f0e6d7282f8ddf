package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "conversation",
		Subsystem: "realtime",
		Name:      "connections",
		Help:      "Open websocket connections on this instance.",
	})
	subscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "conversation",
		Subsystem: "realtime",
		Name:      "subscriptions",
		Help:      "Room memberships across all connections on this instance.",
	})
	slowConsumers = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "conversation",
		Subsystem: "realtime",
		Name:      "slow_consumers_total",
		Help:      "Connections dropped because their send buffer was full.",
	})
	relayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "conversation",
		Subsystem: "realtime",
		Name:      "relay_errors_total",
		Help:      "Relay failures by direction.",
	}, []string{"direction"})
)
