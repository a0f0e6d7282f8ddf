package chatclient

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultPollInterval is the catch-up cadence while a conversation is open.
const DefaultPollInterval = 3 * time.Second

type Option func(*Session)

func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithSocket enables the realtime path against a websocket endpoint such as ws://host/ws.
// Without it the session relies on polling alone.
func WithSocket(wsURL string) Option {
	return func(s *Session) {
		s.socketURL = wsURL
	}
}

// WithErrorHandler receives background poll and socket failures. They never stop the session.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Session) {
		s.onError = fn
	}
}

// Session keeps a View of one conversation current. Socket events and poll results both go
// through View.Merge, so a missed event and a stale poll heal the same way.
type Session struct {
	api            *API
	view           *View
	conversationID string

	pollInterval time.Duration
	socketURL    string
	onError      func(error)

	mu     sync.Mutex
	socket *Socket

	updates chan struct{}
}

func NewSession(api *API, conversationID, selfID string, opts ...Option) *Session {
	s := &Session{
		api:            api,
		view:           NewView(conversationID, selfID),
		conversationID: conversationID,
		pollInterval:   DefaultPollInterval,
		onError:        func(error) {},
		updates:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) View() *View {
	return s.view
}

// Updates signals that the view changed. Signals coalesce; read View for the state.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

func (s *Session) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Run polls on a fixed interval and, when configured, consumes the socket until ctx is done.
// A dropped socket is redialed on the next poll tick.
func (s *Session) Run(ctx context.Context) error {
	defer s.closeSocket()

	if err := s.Poll(ctx); err != nil {
		s.onError(err)
	}
	s.ensureSocket(ctx)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		var events <-chan Event
		if sock := s.currentSocket(); sock != nil {
			events = sock.Events()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Poll(ctx); err != nil && ctx.Err() == nil {
				s.onError(err)
			}
			s.ensureSocket(ctx)
		case event, ok := <-events:
			if !ok {
				s.dropSocket()
				continue
			}
			if s.view.ApplyEvent(event) {
				s.notify()
			}
		}
	}
}

// Poll merges the authoritative message list into the view.
func (s *Session) Poll(ctx context.Context) error {
	msgs, err := s.api.List(ctx, s.conversationID, "")
	if err != nil {
		return fmt.Errorf("poll: %w", err)
	}
	if s.view.Merge(msgs...) {
		s.notify()
	}
	return nil
}

// Send shows the message immediately as pending and reconciles it with the server answer.
// On failure the entry stays visible as failed.
func (s *Session) Send(ctx context.Context, content string) (Entry, error) {
	entry := s.view.AddPending(content)
	s.notify()

	return s.deliver(ctx, entry)
}

// Retry resends a failed entry under its original correlation id.
func (s *Session) Retry(ctx context.Context, localID string) (Entry, error) {
	entry, ok := s.view.Retry(localID)
	if !ok {
		return Entry{}, fmt.Errorf("no failed entry %s", localID)
	}
	s.notify()

	return s.deliver(ctx, entry)
}

func (s *Session) deliver(ctx context.Context, entry Entry) (Entry, error) {
	msg, err := s.api.Send(ctx, s.conversationID, entry.Content, entry.LocalID)
	if err != nil {
		s.view.Fail(entry.LocalID, err)
		s.notify()
		failed, _ := s.view.Entry(entry.LocalID)
		return failed, err
	}

	s.view.Confirm(entry.LocalID, *msg)
	s.notify()

	confirmed, _ := s.view.Entry(entry.LocalID)
	return confirmed, nil
}

func (s *Session) MarkRead(ctx context.Context) (ReadResult, error) {
	res, err := s.api.MarkRead(ctx, s.conversationID)
	if err != nil {
		return res, err
	}
	if s.view.ApplyRead(ReadReceipt{ReaderID: s.view.selfID, UpToSeq: res.UpToSeq}) {
		s.notify()
	}
	return res, nil
}

// Typing goes over the socket when one is open, otherwise over the API.
func (s *Session) Typing(ctx context.Context, isTyping bool) error {
	if sock := s.currentSocket(); sock != nil {
		if err := sock.Typing(s.conversationID, isTyping); err == nil {
			return nil
		}
	}
	return s.api.Typing(ctx, s.conversationID, isTyping)
}

func (s *Session) ensureSocket(ctx context.Context) {
	if s.socketURL == "" || s.currentSocket() != nil {
		return
	}

	sock, err := s.connect(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.onError(err)
		}
		return
	}

	s.mu.Lock()
	s.socket = sock
	s.mu.Unlock()

	// events published between the last poll and the join are picked up here
	if err := s.Poll(ctx); err != nil && ctx.Err() == nil {
		s.onError(err)
	}
}

func (s *Session) connect(ctx context.Context) (*Socket, error) {
	connect, err := s.api.ConnectToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect token: %w", err)
	}

	sock, err := DialSocket(ctx, s.socketURL, connect.Token)
	if err != nil {
		return nil, err
	}

	sub, err := s.api.SubscribeToken(ctx, s.conversationID)
	if err != nil {
		_ = sock.Close()
		return nil, fmt.Errorf("subscribe token: %w", err)
	}

	if err := sock.Join(ctx, s.conversationID, sub.Token); err != nil {
		_ = sock.Close()
		return nil, err
	}

	return sock, nil
}

func (s *Session) currentSocket() *Socket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.socket
}

func (s *Session) dropSocket() {
	s.mu.Lock()
	sock := s.socket
	s.socket = nil
	s.mu.Unlock()

	if sock != nil {
		_ = sock.Close()
		s.onError(fmt.Errorf("socket closed: %v", sock.Err()))
	}
}

func (s *Session) closeSocket() {
	s.mu.Lock()
	sock := s.socket
	s.socket = nil
	s.mu.Unlock()

	if sock != nil {
		_ = sock.Close()
	}
}
