package centrifugo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
	"github.com/s21platform/conversation-service/internal/pkg/jwt"
)

const (
	publishMethod = "publish"
	retryCount    = 2
)

type Client struct {
	http *resty.Client
}

func New(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Centrifuge.BaseURL).
		SetTimeout(cfg.Centrifuge.Timeout).
		SetAuthScheme("apikey").
		SetAuthToken(cfg.Centrifuge.APIKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(retryCount).
		SetRetryWaitTime(50 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{http: client}
}

func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// Publish forwards the event to the conversation channel. Typing signals stay out of channel
// history; message events are deduplicated by message id across retries.
func (c *Client) Publish(ctx context.Context, event model.Event) error {
	params := model.CentrifugoEventParams{
		Channel: jwt.Channel(event.ConversationID),
		Data:    event,
	}
	switch event.Type {
	case model.EventTyping:
		params.SkipHistory = true
	case model.EventMessage:
		if event.Message != nil {
			params.IdempotencyKey = event.Message.ID
		}
	}

	var reply model.CentrifugoReply
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(model.CentrifugoEvent{Method: publishMethod, Params: params}).
		SetResult(&reply).
		ForceContentType("application/json").
		Post("/api")
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	if reply.Error != nil {
		return reply.Error
	}

	return nil
}
