package chatclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// fakeServer is an in-memory stand-in for the conversation service HTTP and socket surface.
type fakeServer struct {
	mu       sync.Mutex
	messages []Message
	failSend int
	headers  http.Header
	sockets  []*websocket.Conn
	joined   chan string

	srv *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	f := &fakeServer{joined: make(chan string, 8)}

	r := chi.NewRouter()
	r.Get("/api/conversations/{id}/messages", f.list)
	r.Post("/api/conversations/{id}/messages", f.send)
	r.Post("/api/conversations/{id}/read", f.read)
	r.Patch("/api/conversations/{id}/status", func(w http.ResponseWriter, _ *http.Request) {
		writeFake(w, http.StatusConflict, errorBody{Error: "open -> closed: invalid status transition"})
	})
	r.Get("/api/realtime/token", func(w http.ResponseWriter, _ *http.Request) {
		writeFake(w, http.StatusOK, Token{Token: "connect", ExpiresAt: time.Now().Add(time.Hour).Unix()})
	})
	r.Get("/api/conversations/{id}/subscribe-token", func(w http.ResponseWriter, _ *http.Request) {
		writeFake(w, http.StatusOK, Token{Token: "subscribe"})
	})
	r.Get("/ws", f.ws)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.close)

	return f
}

func (f *fakeServer) close() {
	f.mu.Lock()
	for _, c := range f.sockets {
		_ = c.Close()
	}
	f.mu.Unlock()
	f.srv.Close()
}

func (f *fakeServer) wsURL() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws"
}

func writeFake(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeServer) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headers = r.Header.Clone()
	msgs := append([]Message{}, f.messages...)
	writeFake(w, http.StatusOK, map[string][]Message{"messages": msgs})
}

func (f *fakeServer) send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content     string `json:"content"`
		ClientMsgID string `json:"client_msg_id"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.headers = r.Header.Clone()
	if f.failSend > 0 {
		f.failSend--
		writeFake(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	sender := r.Header.Get("X-User-Uuid")
	for _, m := range f.messages {
		if m.ClientMsgID != nil && *m.ClientMsgID == req.ClientMsgID && m.SenderID == sender {
			writeFake(w, http.StatusOK, m)
			return
		}
	}

	msg := f.appendLocked(chi.URLParam(r, "id"), sender, req.Content)
	if req.ClientMsgID != "" {
		id := req.ClientMsgID
		f.messages[len(f.messages)-1].ClientMsgID = &id
		msg.ClientMsgID = &id
	}
	writeFake(w, http.StatusOK, msg)
}

func (f *fakeServer) read(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reader := r.Header.Get("X-User-Uuid")
	var count, upTo int64
	for i := range f.messages {
		if f.messages[i].SenderID != reader && !f.messages[i].Read {
			f.messages[i].Read = true
			count++
		}
		upTo = f.messages[i].Seq
	}
	writeFake(w, http.StatusOK, ReadResult{Count: count, UpToSeq: upTo})
}

func (f *fakeServer) ws(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != "connect" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.sockets = append(f.sockets, conn)
	f.mu.Unlock()

	go func() {
		for {
			var frame clientFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			if frame.Type == frameJoin {
				f.mu.Lock()
				_ = conn.WriteJSON(serverFrame{Type: frameJoined, ConversationID: frame.ConversationID})
				f.mu.Unlock()
				f.joined <- frame.ConversationID
			}
		}
	}()
}

// appendMessage stores a message as if another participant had sent it.
func (f *fakeServer) appendMessage(conversationID, sender, content string) Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appendLocked(conversationID, sender, content)
}

func (f *fakeServer) appendLocked(conversationID, sender, content string) Message {
	msg := Message{
		ID:             fmt.Sprintf("m-%d", len(f.messages)+1),
		ConversationID: conversationID,
		SenderID:       sender,
		Seq:            int64(len(f.messages) + 1),
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	f.messages = append(f.messages, msg)
	return msg
}

func (f *fakeServer) push(event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.sockets {
		_ = c.WriteJSON(event)
	}
}

func (f *fakeServer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}
