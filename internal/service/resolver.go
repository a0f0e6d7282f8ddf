package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/s21platform/conversation-service/internal/model"
)

// authorize decides the caller's role on a loaded conversation.
func authorize(conv *model.Conversation, identity model.Identity) (model.ParticipantRole, error) {
	if conv.IsTicket() {
		switch {
		case conv.IsRequester(identity.UserID):
			return model.RoleOwner, nil
		case conv.IsAssignee(identity.UserID), identity.IsAgent():
			return model.RoleAgent, nil
		case conv.IsParticipant(identity.UserID):
			return model.RoleOwner, nil
		}
		return model.RoleNone, model.ErrForbidden
	}

	if conv.IsParticipant(identity.UserID) {
		return model.RoleOwner, nil
	}
	return model.RoleNone, model.ErrForbidden
}

// Resolve maps a conversation id (for tickets, the ticket id) to the conversation and the
// caller's role, failing with ErrNotFound or ErrForbidden.
func (s *Service) Resolve(ctx context.Context, identity model.Identity, conversationID string) (*model.Conversation, model.ParticipantRole, error) {
	conv, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, model.RoleNone, err
	}

	role, err := authorize(conv, identity)
	if err != nil {
		return nil, model.RoleNone, err
	}

	return conv, role, nil
}

// ResolveBooking returns the direct conversation of a ride booking, creating it on first use.
// Only the booking's two parties may resolve it.
func (s *Service) ResolveBooking(ctx context.Context, identity model.Identity, bookingID string) (*model.Conversation, model.ParticipantRole, error) {
	booking, err := s.repository.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, model.RoleNone, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}

	if !booking.Includes(identity.UserID) {
		return nil, model.RoleNone, model.ErrForbidden
	}

	conv, err := s.repository.EnsureDirectConversation(ctx,
		model.BookingRoutingKey(bookingID),
		[]string{booking.DriverID, booking.PassengerID},
	)
	if err != nil {
		return nil, model.RoleNone, fmt.Errorf("failed to ensure booking conversation: %w", err)
	}

	return conv, model.RoleOwner, nil
}

// ResolvePeer returns the direct conversation between the caller and peerID.
func (s *Service) ResolvePeer(ctx context.Context, identity model.Identity, peerID string) (*model.Conversation, model.ParticipantRole, error) {
	peerID = strings.TrimSpace(peerID)
	if peerID == "" || peerID == identity.UserID {
		return nil, model.RoleNone, fmt.Errorf("failed to resolve peer %q: %w", peerID, model.ErrInvalidPeer)
	}

	conv, err := s.repository.EnsureDirectConversation(ctx,
		model.PairRoutingKey(identity.UserID, peerID),
		[]string{identity.UserID, peerID},
	)
	if err != nil {
		return nil, model.RoleNone, fmt.Errorf("failed to ensure pair conversation: %w", err)
	}

	return conv, model.RoleOwner, nil
}
