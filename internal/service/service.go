package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/lifecycle"
	"github.com/s21platform/conversation-service/internal/model"
	"github.com/s21platform/conversation-service/internal/pkg/keylock"
	"github.com/s21platform/conversation-service/internal/pkg/tx"
)

type Service struct {
	repository Repository
	publishers []Publisher
	locks      *keylock.Locker
}

func New(repo Repository, publishers ...Publisher) *Service {
	return &Service{
		repository: repo,
		publishers: publishers,
		locks:      keylock.New(),
	}
}

// Send persists a message and then publishes it. The conversation lock is held until every
// publisher has been handed the event, so room order always matches append order.
func (s *Service) Send(ctx context.Context, identity model.Identity, conversationID, content, clientMsgID string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrInvalidContent
	}

	unlock := s.locks.Lock(conversationID)
	defer unlock()

	var (
		message   *model.Message
		conv      *model.Conversation
		duplicate bool
		moved     bool
	)
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		conv, err = s.repository.LockConversation(ctx, conversationID)
		if err != nil {
			return err
		}

		role, err := authorize(conv, identity)
		if err != nil {
			return err
		}

		if err := lifecycle.AcceptsMessages(conv); err != nil {
			return err
		}

		if clientMsgID != "" {
			existing, err := s.repository.FindMessageByClientID(ctx, conversationID, identity.UserID, clientMsgID)
			switch {
			case err == nil:
				message, duplicate = existing, true
				return nil
			case !errors.Is(err, model.ErrNotFound):
				return fmt.Errorf("failed to look up client message id: %w", err)
			}
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate message id: %w", err)
		}

		message, err = s.repository.AppendMessage(ctx, model.NewMessage{
			ID:             id.String(),
			ConversationID: conversationID,
			SenderID:       identity.UserID,
			Content:        content,
			ClientMsgID:    clientMsgID,
		})
		if err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}

		if conv.IsTicket() {
			if err := s.repository.AddParticipant(ctx, conversationID, identity.UserID); err != nil {
				return fmt.Errorf("failed to add participant: %w", err)
			}
		}

		moved, err = s.applyReply(ctx, conv, role, identity.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if duplicate {
		duplicateSends.Inc()
		return message, nil
	}

	messagesAppended.WithLabelValues(string(conv.Kind)).Inc()
	s.publish(ctx, model.MessageEvent(*message))
	if moved {
		statusChanges.WithLabelValues(string(conv.Status)).Inc()
		s.publish(ctx, model.StatusEvent(conv.ID, conv.Status, conv.AssigneeID))
	}

	return message, nil
}

// applyReply runs the ticket rules for an accepted message and mirrors the outcome on conv.
// Assignment is first writer wins: the claim only lands while the ticket has no assignee.
func (s *Service) applyReply(ctx context.Context, conv *model.Conversation, role model.ParticipantRole, senderID string) (bool, error) {
	reply := lifecycle.OnReply(conv, role)
	moved := false

	if reply.Claim {
		claimed, err := s.repository.ClaimTicket(ctx, conv.ID, senderID)
		if err != nil {
			return false, fmt.Errorf("failed to claim ticket: %w", err)
		}
		if claimed {
			assignee := senderID
			conv.AssigneeID = &assignee
			moved = true
		}
	}

	if reply.Start {
		started, err := s.repository.UpdateStatus(ctx, conv.ID, model.StatusOpen, model.StatusInProgress)
		if err != nil {
			return false, fmt.Errorf("failed to start ticket: %w", err)
		}
		if started {
			conv.Status = model.StatusInProgress
			moved = true
		}
	}

	return moved, nil
}

// List returns the full thread in append order, or only what follows afterID.
func (s *Service) List(ctx context.Context, identity model.Identity, conversationID, afterID string) (model.MessageList, error) {
	if _, _, err := s.Resolve(ctx, identity, conversationID); err != nil {
		return nil, err
	}

	var afterSeq int64
	if afterID != "" {
		after, err := s.repository.GetMessage(ctx, conversationID, afterID)
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", afterID, err)
		}
		afterSeq = after.Seq
	}

	messages, err := s.repository.ListMessages(ctx, conversationID, afterSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// MarkRead flips every unread message not sent by the caller. It does not take the
// conversation lock: a message appended during the sweep is picked up by the next call.
func (s *Service) MarkRead(ctx context.Context, identity model.Identity, conversationID string) (model.ReadResult, error) {
	if _, _, err := s.Resolve(ctx, identity, conversationID); err != nil {
		return model.ReadResult{}, err
	}

	res, err := s.repository.MarkRead(ctx, conversationID, identity.UserID)
	if err != nil {
		return model.ReadResult{}, fmt.Errorf("failed to mark messages read: %w", err)
	}

	if res.Count > 0 {
		s.publish(ctx, model.ReadEvent(conversationID, identity.UserID, res.UpToSeq))
	}

	return res, nil
}

// SetStatus applies an explicit agent transition.
func (s *Service) SetStatus(ctx context.Context, identity model.Identity, conversationID string, status model.TicketStatus) (*model.Conversation, error) {
	unlock := s.locks.Lock(conversationID)
	defer unlock()

	var (
		conv    *model.Conversation
		changed bool
	)
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		conv, err = s.lockTicketForAgent(ctx, identity, conversationID)
		if err != nil {
			return err
		}

		changed, err = lifecycle.Transition(conv.Status, status)
		if err != nil || !changed {
			return err
		}

		updated, err := s.repository.UpdateStatus(ctx, conversationID, conv.Status, status)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		if !updated {
			return fmt.Errorf("status changed concurrently: %w", model.ErrConflict)
		}

		conv.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		statusChanges.WithLabelValues(string(status)).Inc()
		s.publish(ctx, model.StatusEvent(conversationID, conv.Status, conv.AssigneeID))
	}

	return s.repository.GetConversation(ctx, conversationID)
}

// SetAssignee assigns a ticket explicitly. With exclusive set the call only succeeds while the
// ticket is unassigned or already held by agentID, otherwise it fails with ErrConflict.
func (s *Service) SetAssignee(ctx context.Context, identity model.Identity, conversationID, agentID string, exclusive bool) (*model.Conversation, error) {
	unlock := s.locks.Lock(conversationID)
	defer unlock()

	var (
		conv    *model.Conversation
		changed bool
	)
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		conv, err = s.lockTicketForAgent(ctx, identity, conversationID)
		if err != nil {
			return err
		}

		if conv.Status == model.StatusClosed {
			return model.ErrConversationClosed
		}

		if conv.IsAssignee(agentID) {
			return nil
		}

		if exclusive {
			if conv.AssigneeID != nil {
				return fmt.Errorf("ticket is assigned to %s: %w", *conv.AssigneeID, model.ErrConflict)
			}
			claimed, err := s.repository.ClaimTicket(ctx, conversationID, agentID)
			if err != nil {
				return fmt.Errorf("failed to claim ticket: %w", err)
			}
			if !claimed {
				return fmt.Errorf("ticket was claimed concurrently: %w", model.ErrConflict)
			}
		} else if err := s.repository.SetAssignee(ctx, conversationID, agentID); err != nil {
			return fmt.Errorf("failed to set assignee: %w", err)
		}

		assignee := agentID
		conv.AssigneeID = &assignee
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(ctx, model.StatusEvent(conversationID, conv.Status, conv.AssigneeID))
	}

	return s.repository.GetConversation(ctx, conversationID)
}

func (s *Service) lockTicketForAgent(ctx context.Context, identity model.Identity, conversationID string) (*model.Conversation, error) {
	conv, err := s.repository.LockConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	role, err := authorize(conv, identity)
	if err != nil {
		return nil, err
	}

	if !conv.IsTicket() {
		return nil, model.ErrNotTicket
	}

	if role != model.RoleAgent {
		return nil, model.ErrForbidden
	}

	return conv, nil
}

// Typing relays an ephemeral presence signal. Nothing is stored.
func (s *Service) Typing(ctx context.Context, identity model.Identity, conversationID string, isTyping bool) error {
	if _, _, err := s.Resolve(ctx, identity, conversationID); err != nil {
		return err
	}

	s.publish(ctx, model.TypingEvent(conversationID, identity.UserID, isTyping))
	return nil
}

// CreateTicket opens a support case for the caller, optionally with a first message.
func (s *Service) CreateTicket(ctx context.Context, identity model.Identity, ticket model.Ticket) (*model.Conversation, error) {
	if ticket.Priority == "" {
		ticket.Priority = model.PriorityMedium
	}
	content := strings.TrimSpace(ticket.Content)

	var conv *model.Conversation
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		var err error
		conv, err = s.repository.CreateTicket(ctx, identity.UserID, ticket)
		if err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}

		if content == "" {
			return nil
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate message id: %w", err)
		}

		_, err = s.repository.AppendMessage(ctx, model.NewMessage{
			ID:             id.String(),
			ConversationID: conv.ID,
			SenderID:       identity.UserID,
			Content:        content,
		})
		if err != nil {
			return fmt.Errorf("failed to append first message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if content != "" {
		messagesAppended.WithLabelValues(string(model.KindTicket)).Inc()
	}

	return s.repository.GetConversation(ctx, conv.ID)
}

// ListConversations returns every conversation the caller takes part in.
func (s *Service) ListConversations(ctx context.Context, identity model.Identity) (model.ConversationPreviewList, error) {
	previews, err := s.repository.ListConversations(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return previews, nil
}

// ListTickets is the agent queue; plain users only ever see their own tickets.
func (s *Service) ListTickets(ctx context.Context, identity model.Identity, filter model.TicketFilter) ([]model.Conversation, error) {
	if !identity.IsAgent() {
		filter.RequesterID = identity.UserID
	}

	tickets, err := s.repository.ListTickets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// publish hands the event to every publisher. Failures are logged and counted but never
// undo the committed write: clients converge through polling.
func (s *Service) publish(ctx context.Context, event model.Event) {
	for _, p := range s.publishers {
		if err := p.Publish(ctx, event); err != nil {
			publishFailures.Inc()
			logger := logger_lib.FromContext(ctx, config.KeyLogger)
			logger.Error(fmt.Sprintf("failed to publish %s event for conversation %s: %v", event.Type, event.ConversationID, err))
		}
	}
}
