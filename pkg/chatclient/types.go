// Package chatclient is the client side of the conversation service: a local view of one
// conversation fed by optimistic sends, the realtime socket and a periodic poll, all merged
// through the same rules.
package chatclient

import "time"

// Message mirrors the service representation of a stored message.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Seq            int64     `json:"seq"`
	Content        string    `json:"content"`
	ClientMsgID    *string   `json:"client_msg_id,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type Conversation struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	ParticipantIDs []string  `json:"participant_ids"`
	LastSeq        int64     `json:"last_seq"`
	Subject        *string   `json:"subject,omitempty"`
	Status         *string   `json:"status,omitempty"`
	Priority       *string   `json:"priority,omitempty"`
	RequesterID    *string   `json:"requester_id,omitempty"`
	AssigneeID     *string   `json:"assignee_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ConversationPreview struct {
	Conversation       Conversation `json:"conversation"`
	LastMessageContent *string      `json:"last_message_content,omitempty"`
	LastMessageAt      *time.Time   `json:"last_message_at,omitempty"`
	UnreadCount        int64        `json:"unread_count"`
}

type ReadResult struct {
	Count   int64 `json:"count"`
	UpToSeq int64 `json:"up_to_seq"`
}

type Token struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	Channel   *string `json:"channel,omitempty"`
}

type EventType string

const (
	EventMessage EventType = "message"
	EventTyping  EventType = "typing"
	EventStatus  EventType = "status"
	EventRead    EventType = "read"
)

// Event is a room event as pushed over the socket.
type Event struct {
	Type           EventType     `json:"type"`
	ConversationID string        `json:"conversation_id"`
	Message        *Message      `json:"message,omitempty"`
	Typing         *TypingSignal `json:"typing,omitempty"`
	Status         *StatusChange `json:"status,omitempty"`
	Read           *ReadReceipt  `json:"read,omitempty"`
}

type TypingSignal struct {
	UserID   string `json:"user_id"`
	IsTyping bool   `json:"is_typing"`
}

type StatusChange struct {
	Status     string  `json:"status"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

type ReadReceipt struct {
	ReaderID string `json:"reader_id"`
	UpToSeq  int64  `json:"up_to_seq"`
}

// State tags a locally visible entry.
type State string

const (
	StatePending   State = "pending"
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
)

// Entry is one line of the local view. LocalID is set for entries this client originated and
// doubles as the client_msg_id sent to the server.
type Entry struct {
	Message
	LocalID string
	State   State
	Err     error
}

func (e Entry) Pending() bool {
	return e.State == StatePending
}

func (e Entry) Failed() bool {
	return e.State == StateFailed
}
