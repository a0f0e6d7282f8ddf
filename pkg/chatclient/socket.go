package chatclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	frameJoin   = "join"
	frameLeave  = "leave"
	frameTyping = "typing"
	frameJoined = "joined"
	frameLeft   = "left"
	frameError  = "error"

	socketWriteWait = 10 * time.Second
)

var ErrSocketClosed = errors.New("socket closed")

type clientFrame struct {
	Type           string `json:"type"`
	Token          string `json:"token,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	IsTyping       bool   `json:"is_typing,omitempty"`
}

type serverFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Socket is the realtime half of the client: one websocket carrying any number of rooms.
type Socket struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	mu    sync.Mutex
	joins map[string]chan error

	events  chan Event
	done    chan struct{}
	closing chan struct{}
	once    sync.Once
	err     error
}

// DialSocket connects to wsURL (e.g. ws://host/ws) with a connect token.
func DialSocket(ctx context.Context, wsURL, connectToken string) (*Socket, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid socket url: %w", err)
	}
	q := u.Query()
	q.Set("token", connectToken)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", wsURL, err)
	}

	s := &Socket{
		conn:    conn,
		joins:   make(map[string]chan error),
		events:  make(chan Event, 64),
		done:    make(chan struct{}),
		closing: make(chan struct{}),
	}
	go s.readLoop()

	return s, nil
}

// Events delivers room events until the socket closes.
func (s *Socket) Events() <-chan Event {
	return s.events
}

func (s *Socket) Done() <-chan struct{} {
	return s.done
}

// Err reports why the socket closed.
func (s *Socket) Err() error {
	<-s.done
	return s.err
}

func (s *Socket) Close() error {
	s.once.Do(func() { close(s.closing) })
	return s.conn.Close()
}

// Join subscribes to a room and returns once the server acknowledged membership, so no
// event published after Join returns can be missed.
func (s *Socket) Join(ctx context.Context, conversationID, subscribeToken string) error {
	ack := make(chan error, 1)

	s.mu.Lock()
	s.joins[conversationID] = ack
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.joins, conversationID)
		s.mu.Unlock()
	}()

	if err := s.write(clientFrame{Type: frameJoin, Token: subscribeToken, ConversationID: conversationID}); err != nil {
		return err
	}

	select {
	case err := <-ack:
		return err
	case <-s.done:
		return ErrSocketClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Socket) Leave(conversationID string) error {
	return s.write(clientFrame{Type: frameLeave, ConversationID: conversationID})
}

func (s *Socket) Typing(conversationID string, isTyping bool) error {
	return s.write(clientFrame{Type: frameTyping, ConversationID: conversationID, IsTyping: isTyping})
}

func (s *Socket) write(frame clientFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write %s frame: %w", frame.Type, err)
	}
	return nil
}

func (s *Socket) readLoop() {
	defer close(s.done)
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.err = err
			return
		}

		var head serverFrame
		if err := json.Unmarshal(data, &head); err != nil {
			continue
		}

		switch head.Type {
		case frameJoined:
			s.ack(head.ConversationID, nil)
		case frameError:
			s.ack(head.ConversationID, fmt.Errorf("join %s: %s", head.ConversationID, head.Error))
		case frameLeft:
		default:
			var event Event
			if err := json.Unmarshal(data, &event); err != nil {
				continue
			}
			select {
			case s.events <- event:
			case <-s.closing:
				return
			}
		}
	}
}

func (s *Socket) ack(conversationID string, err error) {
	s.mu.Lock()
	ch, ok := s.joins[conversationID]
	s.mu.Unlock()

	if ok {
		select {
		case ch <- err:
		default:
		}
	}
}
