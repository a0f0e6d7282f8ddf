package model

import (
	"time"
)

type MessageList []Message

// Message is immutable after append except for Read, which only ever flips false to true.
type Message struct {
	ID             string    `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"conversation_id"`
	SenderID       string    `db:"sender_id" json:"sender_id"`
	Seq            int64     `db:"seq" json:"seq"`
	Content        string    `db:"content" json:"content"`
	ClientMsgID    *string   `db:"client_msg_id" json:"client_msg_id,omitempty"`
	Read           bool      `db:"read" json:"read"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type NewMessage struct {
	ID             string
	ConversationID string
	SenderID       string
	Content        string
	ClientMsgID    string
}

type ReadResult struct {
	Count   int64
	UpToSeq int64
}
