package validator

import (
	"fmt"
	"strings"

	api "github.com/s21platform/conversation-service/internal/generated"
	"github.com/s21platform/conversation-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateDirect(req *api.CreateDirectConversationRequest, requesterID string) error {
	hasBooking := req.BookingId != nil && strings.TrimSpace(*req.BookingId) != ""
	hasPeer := req.PeerId != nil && strings.TrimSpace(*req.PeerId) != ""

	switch {
	case hasBooking && hasPeer:
		return fmt.Errorf("either booking_id or peer_id must be set, not both")
	case !hasBooking && !hasPeer:
		return fmt.Errorf("booking_id or peer_id is required")
	case hasPeer && strings.TrimSpace(*req.PeerId) == requesterID:
		return fmt.Errorf("direct conversation requires exactly 2 participants")
	}

	return nil
}

func (v *Validator) ValidateCreateTicket(req *api.CreateTicketRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("subject cannot be empty")
	}

	if req.Priority != nil && !model.Priority(*req.Priority).Valid() {
		return fmt.Errorf("priority '%s' is not supported", *req.Priority)
	}

	return nil
}

// ValidateSendMessage only rejects blank content; there is no length cap.
func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return model.ErrInvalidContent
	}

	if req.ClientMsgId != nil && len(*req.ClientMsgId) > 128 {
		return fmt.Errorf("client_msg_id exceeds maximum length of 128 characters")
	}

	return nil
}

func (v *Validator) ValidateSetAssignee(req *api.SetAssigneeRequest) error {
	if strings.TrimSpace(req.AgentId) == "" {
		return fmt.Errorf("agent_id is required")
	}

	return nil
}
