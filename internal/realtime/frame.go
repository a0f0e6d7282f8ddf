package realtime

import (
	"encoding/json"

	"github.com/s21platform/conversation-service/internal/model"
)

const (
	FrameJoin   = "join"
	FrameLeave  = "leave"
	FrameTyping = "typing"

	FrameJoined = "joined"
	FrameLeft   = "left"
	FrameError  = "error"
)

// ClientFrame is everything a connection may send. Join carries a subscribe token minted
// by the REST API; the conversation id is taken from the token, not from the frame.
type ClientFrame struct {
	Type           string `json:"type"`
	Token          string `json:"token,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	IsTyping       bool   `json:"is_typing,omitempty"`
}

// ControlFrame answers a ClientFrame. Room events are written as model.Event, which shares
// the "type" discriminator.
type ControlFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

func encodeControl(frame ControlFrame) []byte {
	data, _ := json.Marshal(frame)
	return data
}

func encodeEvent(event model.Event) ([]byte, error) {
	return json.Marshal(event)
}
