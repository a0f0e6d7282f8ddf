package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
)

var deliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "conversation",
	Subsystem: "kafka",
	Name:      "event_delivery_failures_total",
	Help:      "Conversation events the broker did not acknowledge.",
})

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer exports conversation events to the events topic, keyed by conversation id so a
// conversation's events stay on one partition in append order.
type Producer struct {
	writer messageWriter
}

func New(cfg *config.Config) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers()...),
			Topic:        cfg.Kafka.EventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion: func(_ []kafka.Message, err error) {
				if err != nil {
					deliveryFailures.Inc()
				}
			},
		},
	}
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}

// Publish skips typing signals: they are ephemeral and have no consumers outside the rooms.
func (p *Producer) Publish(ctx context.Context, event model.Event) error {
	if event.Type == model.EventTyping {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ConversationID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}
