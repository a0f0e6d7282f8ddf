//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/conversation-service/internal/model"
)

type Repository interface {
	EnsureDirectConversation(ctx context.Context, routingKey string, participantIDs []string) (*model.Conversation, error)
	CreateTicket(ctx context.Context, requesterID string, ticket model.Ticket) (*model.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	LockConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	AddParticipant(ctx context.Context, conversationID, userID string) error

	AppendMessage(ctx context.Context, msg model.NewMessage) (*model.Message, error)
	FindMessageByClientID(ctx context.Context, conversationID, senderID, clientMsgID string) (*model.Message, error)
	GetMessage(ctx context.Context, conversationID, messageID string) (*model.Message, error)
	ListMessages(ctx context.Context, conversationID string, afterSeq int64) (model.MessageList, error)
	MarkRead(ctx context.Context, conversationID, readerID string) (model.ReadResult, error)

	ClaimTicket(ctx context.Context, conversationID, agentID string) (bool, error)
	SetAssignee(ctx context.Context, conversationID, agentID string) error
	UpdateStatus(ctx context.Context, conversationID string, from, to model.TicketStatus) (bool, error)

	ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error)
	ListTickets(ctx context.Context, filter model.TicketFilter) ([]model.Conversation, error)
	GetBooking(ctx context.Context, bookingID string) (*model.BookingParticipants, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Publisher fans an event out to one delivery channel: the websocket hub, Centrifugo, Kafka.
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}
