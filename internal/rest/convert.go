package rest

import (
	api "github.com/s21platform/conversation-service/internal/generated"
	"github.com/s21platform/conversation-service/internal/model"
)

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:             msg.ID,
		ConversationId: msg.ConversationID,
		SenderId:       msg.SenderID,
		Seq:            msg.Seq,
		Content:        msg.Content,
		ClientMsgId:    msg.ClientMsgID,
		Read:           msg.Read,
		CreatedAt:      msg.CreatedAt,
	}
}

func toAPIConversation(conv model.Conversation) api.Conversation {
	out := api.Conversation{
		Id:             conv.ID,
		Kind:           string(conv.Kind),
		ParticipantIds: conv.ParticipantIDs,
		LastSeq:        conv.LastSeq,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
		RequesterId:    conv.RequesterID,
		AssigneeId:     conv.AssigneeID,
	}
	if out.ParticipantIds == nil {
		out.ParticipantIds = []string{}
	}

	if conv.IsTicket() {
		subject := conv.Subject
		status := string(conv.Status)
		priority := string(conv.Priority)
		out.Subject = &subject
		out.Status = &status
		out.Priority = &priority
	}

	return out
}

func toAPIPreview(p model.ConversationPreview) api.ConversationPreview {
	return api.ConversationPreview{
		Conversation:       toAPIConversation(p.Conversation),
		LastMessageContent: p.LastMessageContent,
		LastMessageAt:      p.LastMessageAt,
		UnreadCount:        p.UnreadCount,
	}
}
