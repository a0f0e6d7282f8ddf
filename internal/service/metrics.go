package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "conversation",
		Name:      "messages_appended_total",
		Help:      "Messages persisted, by conversation kind.",
	}, []string{"kind"})

	duplicateSends = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "conversation",
		Name:      "duplicate_sends_total",
		Help:      "Sends answered with an already stored message for the same client_msg_id.",
	})

	statusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "conversation",
		Name:      "ticket_status_changes_total",
		Help:      "Ticket status transitions, by target status.",
	}, []string{"status"})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "conversation",
		Name:      "publish_failures_total",
		Help:      "Events a publisher failed to accept after the write committed.",
	})
)
