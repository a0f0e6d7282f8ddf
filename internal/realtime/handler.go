package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
)

type Handler struct {
	hub      *Hub
	tokens   TokenValidator
	typer    Typer
	cfg      config.Realtime
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, tokens TokenValidator, typer Typer, cfg config.Realtime) *Handler {
	return &Handler{
		hub:    hub,
		tokens: tokens,
		typer:  typer,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the gateway terminates browser origins
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades a connection authenticated by a connect token in ?token= or the
// Authorization header.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ServeWS")

	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	claims, err := h.tokens.ValidateConnectToken(token)
	if err != nil {
		logger.Warn(fmt.Sprintf("rejected websocket connect: %v", err))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	client := NewClient(model.Identity{UserID: claims.Subject, Role: claims.Role}, h.cfg.SendBuffer)
	connections.Inc()

	// the request context dies with the handler, the pumps outlive it
	ctx := context.WithValue(context.Background(), config.KeyLogger, logger)

	go h.writePump(conn, client)
	go h.readPump(ctx, conn, client)
}

func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, client *Client) {
	defer func() {
		h.hub.LeaveAll(client)
		client.Close()
		connections.Dec()
	}()

	conn.SetReadLimit(64 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			client.enqueue(encodeControl(ControlFrame{Type: FrameError, Error: "malformed frame"}))
			continue
		}

		h.handleFrame(ctx, client, frame)
	}
}

func (h *Handler) handleFrame(ctx context.Context, client *Client, frame ClientFrame) {
	switch frame.Type {
	case FrameJoin:
		claims, err := h.tokens.ValidateSubscribeToken(frame.Token)
		if err != nil || claims.UserID != client.identity.UserID ||
			(frame.ConversationID != "" && frame.ConversationID != claims.ConversationID) {
			client.enqueue(encodeControl(ControlFrame{Type: FrameError, ConversationID: frame.ConversationID, Error: "forbidden"}))
			return
		}
		if !h.hub.Join(client, claims.ConversationID) {
			logger := logger_lib.FromContext(ctx, config.KeyLogger)
			logger.Warn(fmt.Sprintf("dropping slow client %s on join to %s", client.identity.UserID, claims.ConversationID))
			h.hub.Drop(client)
		}

	case FrameLeave:
		h.hub.Leave(client, frame.ConversationID)
		client.enqueue(encodeControl(ControlFrame{Type: FrameLeft, ConversationID: frame.ConversationID}))

	case FrameTyping:
		if h.typer == nil {
			return
		}
		if err := h.typer.Typing(ctx, client.identity, frame.ConversationID, frame.IsTyping); err != nil {
			client.enqueue(encodeControl(ControlFrame{Type: FrameError, ConversationID: frame.ConversationID, Error: err.Error()}))
		}

	default:
		client.enqueue(encodeControl(ControlFrame{Type: FrameError, Error: fmt.Sprintf("unknown frame type %q", frame.Type)}))
	}
}

func (h *Handler) writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case frame := <-client.Send():
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				client.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				client.Close()
				return
			}
		case <-client.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
