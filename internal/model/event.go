package model

type EventType string

const (
	EventMessage EventType = "message"
	EventTyping  EventType = "typing"
	EventStatus  EventType = "status"
	EventRead    EventType = "read"
)

// Event is what a room receives. Exactly one payload field is set, matching Type.
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
	Status     TicketStatus `json:"status"`
	AssigneeID *string      `json:"assignee_id,omitempty"`
}

type ReadReceipt struct {
	ReaderID string `json:"reader_id"`
	UpToSeq  int64  `json:"up_to_seq"`
}

func MessageEvent(msg Message) Event {
	return Event{Type: EventMessage, ConversationID: msg.ConversationID, Message: &msg}
}

func TypingEvent(conversationID, userID string, isTyping bool) Event {
	return Event{
		Type:           EventTyping,
		ConversationID: conversationID,
		Typing:         &TypingSignal{UserID: userID, IsTyping: isTyping},
	}
}

func StatusEvent(conversationID string, status TicketStatus, assigneeID *string) Event {
	return Event{
		Type:           EventStatus,
		ConversationID: conversationID,
		Status:         &StatusChange{Status: status, AssigneeID: assigneeID},
	}
}

func ReadEvent(conversationID, readerID string, upToSeq int64) Event {
	return Event{
		Type:           EventRead,
		ConversationID: conversationID,
		Read:           &ReadReceipt{ReaderID: readerID, UpToSeq: upToSeq},
	}
}
