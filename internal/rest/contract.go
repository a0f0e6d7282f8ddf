//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/s21platform/conversation-service/internal/generated"
	"github.com/s21platform/conversation-service/internal/model"
)

type ConversationService interface {
	Resolve(ctx context.Context, identity model.Identity, conversationID string) (*model.Conversation, model.ParticipantRole, error)
	ResolveBooking(ctx context.Context, identity model.Identity, bookingID string) (*model.Conversation, model.ParticipantRole, error)
	ResolvePeer(ctx context.Context, identity model.Identity, peerID string) (*model.Conversation, model.ParticipantRole, error)
	Send(ctx context.Context, identity model.Identity, conversationID, content, clientMsgID string) (*model.Message, error)
	List(ctx context.Context, identity model.Identity, conversationID, afterID string) (model.MessageList, error)
	MarkRead(ctx context.Context, identity model.Identity, conversationID string) (model.ReadResult, error)
	SetStatus(ctx context.Context, identity model.Identity, conversationID string, status model.TicketStatus) (*model.Conversation, error)
	SetAssignee(ctx context.Context, identity model.Identity, conversationID, agentID string, exclusive bool) (*model.Conversation, error)
	Typing(ctx context.Context, identity model.Identity, conversationID string, isTyping bool) error
	CreateTicket(ctx context.Context, identity model.Identity, ticket model.Ticket) (*model.Conversation, error)
	ListConversations(ctx context.Context, identity model.Identity) (model.ConversationPreviewList, error)
	ListTickets(ctx context.Context, identity model.Identity, filter model.TicketFilter) ([]model.Conversation, error)
}

type Validator interface {
	ValidateCreateDirect(req *api.CreateDirectConversationRequest, requesterID string) error
	ValidateCreateTicket(req *api.CreateTicketRequest) error
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateSetAssignee(req *api.SetAssigneeRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(identity model.Identity) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
}

type RateLimiter interface {
	Allow(key string) bool
}
