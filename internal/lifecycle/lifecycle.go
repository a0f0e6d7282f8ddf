// Package lifecycle owns the status transitions of ticket conversations.
package lifecycle

import (
	"fmt"

	"github.com/s21platform/conversation-service/internal/model"
)

// transitions lists every explicit move an agent may request. closed has no exits.
var transitions = map[model.TicketStatus][]model.TicketStatus{
	model.StatusOpen:       {model.StatusInProgress},
	model.StatusInProgress: {model.StatusResolved, model.StatusClosed},
	model.StatusResolved:   {model.StatusClosed, model.StatusInProgress},
	model.StatusClosed:     nil,
}

func Valid(status model.TicketStatus) bool {
	_, ok := transitions[status]
	return ok
}

// Transition validates an explicit status change. A move to the current status is
// reported as unchanged rather than rejected.
func Transition(from, to model.TicketStatus) (changed bool, err error) {
	if !Valid(to) {
		return false, fmt.Errorf("unknown status %q: %w", to, model.ErrInvalidTransition)
	}
	if from == model.StatusClosed {
		return false, model.ErrConversationClosed
	}
	if from == to {
		return false, nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return true, nil
		}
	}
	return false, fmt.Errorf("%s -> %s: %w", from, to, model.ErrInvalidTransition)
}

// AcceptsMessages reports whether a send into a conversation in this state is allowed.
func AcceptsMessages(conv *model.Conversation) error {
	if conv.IsTicket() && conv.Status == model.StatusClosed {
		return model.ErrConversationClosed
	}
	return nil
}

// Reply is the outcome of evaluating a freshly appended message against the ticket rules.
type Reply struct {
	Start bool
	Claim bool
}

// OnReply decides what an accepted message does to a ticket. Only agents move a ticket:
// any agent reply starts an open ticket, and an unassigned ticket is claimed by the replier.
func OnReply(conv *model.Conversation, role model.ParticipantRole) Reply {
	if !conv.IsTicket() || role != model.RoleAgent {
		return Reply{}
	}
	return Reply{
		Start: conv.Status == model.StatusOpen,
		Claim: conv.AssigneeID == nil,
	}
}
