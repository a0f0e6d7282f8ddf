package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/conversation-service/internal/model"
)

type envelope struct {
	Origin string      `json:"origin"`
	Event  model.Event `json:"event"`
}

// RedisRelay shares events between instances over one pub/sub channel. Every instance
// delivers its own events locally, so messages tagged with our origin are skipped.
type RedisRelay struct {
	client  *redis.Client
	channel string
	origin  string
}

func NewRedisRelay(client *redis.Client, channel, origin string) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		origin:  origin,
	}
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (r *RedisRelay) Publish(ctx context.Context, event model.Event) error {
	data, err := json.Marshal(envelope{Origin: r.origin, Event: event})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return r.client.Publish(ctx, r.channel, data).Err()
}

// Run feeds events from other instances to deliver until ctx is done.
func (r *RedisRelay) Run(ctx context.Context, deliver func(model.Event) error) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close() //nolint:errcheck // .

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				relayErrors.WithLabelValues("in").Inc()
				continue
			}
			if env.Origin == r.origin {
				continue
			}
			if err := deliver(env.Event); err != nil {
				relayErrors.WithLabelValues("in").Inc()
			}
		}
	}
}
