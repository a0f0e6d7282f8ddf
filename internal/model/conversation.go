package model

import (
	"time"
)

type ConversationKind string

const (
	KindDirect ConversationKind = "direct"
	KindTicket ConversationKind = "ticket"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Conversation is one thread of messages. Ticket-only fields are zero for direct conversations.
type Conversation struct {
	ID          string           `db:"id" json:"id"`
	Kind        ConversationKind `db:"kind" json:"kind"`
	RoutingKey  string           `db:"routing_key" json:"routing_key"`
	Subject     string           `db:"subject" json:"subject,omitempty"`
	RequesterID *string          `db:"requester_id" json:"requester_id,omitempty"`
	Status      TicketStatus     `db:"status" json:"status,omitempty"`
	AssigneeID  *string          `db:"assignee_id" json:"assignee_id,omitempty"`
	Priority    Priority         `db:"priority" json:"priority,omitempty"`
	LastSeq     int64            `db:"last_seq" json:"last_seq"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`

	ParticipantIDs []string `db:"-" json:"participant_ids"`
}

func (c *Conversation) IsTicket() bool {
	return c.Kind == KindTicket
}

func (c *Conversation) IsParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Conversation) IsRequester(userID string) bool {
	return c.RequesterID != nil && *c.RequesterID == userID
}

func (c *Conversation) IsAssignee(userID string) bool {
	return c.AssigneeID != nil && *c.AssigneeID == userID
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	Conversation
	LastMessageContent *string    `db:"last_message_content"`
	LastMessageAt      *time.Time `db:"last_message_at"`
	UnreadCount        int64      `db:"unread_count"`
}

type TicketFilter struct {
	Status      *TicketStatus
	Unassigned  bool
	RequesterID string
}

// Ticket carries what a requester supplies when opening a support case.
type Ticket struct {
	Subject  string
	Priority Priority
	Content  string
}
