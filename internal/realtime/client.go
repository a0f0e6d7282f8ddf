package realtime

import (
	"sync"

	"github.com/s21platform/conversation-service/internal/model"
)

// Client is one websocket connection. Its rooms are guarded by the hub lock.
type Client struct {
	identity model.Identity
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	rooms    map[string]struct{}
}

func NewClient(identity model.Identity, buffer int) *Client {
	if buffer <= 0 {
		buffer = 64
	}
	return &Client{
		identity: identity,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
		rooms:    make(map[string]struct{}),
	}
}

func (c *Client) Identity() model.Identity {
	return c.identity
}

// Send returns the outbound queue. It is never closed; watch Done instead.
func (c *Client) Send() <-chan []byte {
	return c.send
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) Close() {
	c.once.Do(func() { close(c.done) })
}

// enqueue never blocks. false means the client is gone or its buffer is full.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}
