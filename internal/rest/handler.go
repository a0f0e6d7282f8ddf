package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/conversation-service/internal/config"
	api "github.com/s21platform/conversation-service/internal/generated"
	"github.com/s21platform/conversation-service/internal/lifecycle"
	"github.com/s21platform/conversation-service/internal/model"
	"github.com/s21platform/conversation-service/internal/pkg/jwt"
)

type Handler struct {
	service       ConversationService
	validator     Validator
	jwtGenerator  JWTGenerator
	sendLimiter   RateLimiter
	typingLimiter RateLimiter
}

func New(
	service ConversationService,
	validator Validator,
	jwtGenerator JWTGenerator,
	sendLimiter RateLimiter,
	typingLimiter RateLimiter,
) *Handler {
	return &Handler{
		service:       service,
		validator:     validator,
		jwtGenerator:  jwtGenerator,
		sendLimiter:   sendLimiter,
		typingLimiter: typingLimiter,
	}
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListConversations")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	previews, err := h.service.ListConversations(r.Context(), identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations: %v", err))
		h.writeServiceError(w, err)
		return
	}

	conversations := make([]api.ConversationPreview, len(previews))
	for i, p := range previews {
		conversations[i] = toAPIPreview(p)
	}

	h.writeJSON(w, api.ListConversationsResponse{Conversations: conversations}, http.StatusOK)
}

func (h *Handler) CreateDirectConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateDirectConversation")

	var req api.CreateDirectConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateDirect(&req, identity.UserID); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var (
		conv *model.Conversation
		err  error
	)
	if req.BookingId != nil && strings.TrimSpace(*req.BookingId) != "" {
		conv, _, err = h.service.ResolveBooking(r.Context(), identity, strings.TrimSpace(*req.BookingId))
	} else {
		conv, _, err = h.service.ResolvePeer(r.Context(), identity, strings.TrimSpace(*req.PeerId))
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve direct conversation: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIConversation(*conv), http.StatusOK)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	conv, _, err := h.service.Resolve(r.Context(), identity, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve conversation %s: %v", conversationId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIConversation(*conv), http.StatusOK)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request, conversationId string, params api.ListMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListMessages")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	after := ""
	if params.After != nil {
		after = *params.After
	}

	messages, err := h.service.List(r.Context(), identity, conversationId, after)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list messages: %v", err))
		h.writeServiceError(w, err)
		return
	}

	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	h.writeJSON(w, api.ListMessagesResponse{Messages: apiMessages}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if !h.sendLimiter.Allow(identity.UserID) {
		logger.Warn(fmt.Sprintf("send rate limit exceeded for %s", identity.UserID))
		h.writeServiceError(w, model.ErrRateLimited)
		return
	}

	clientMsgID := ""
	if req.ClientMsgId != nil {
		clientMsgID = *req.ClientMsgId
	}

	message, err := h.service.Send(r.Context(), identity, conversationId, req.Content, clientMsgID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIMessage(*message), http.StatusOK)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkRead")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get reader id")
		h.writeError(w, "failed to get reader id", http.StatusInternalServerError)
		return
	}

	res, err := h.service.MarkRead(r.Context(), identity, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark read: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.MarkReadResponse{Count: res.Count, UpToSeq: res.UpToSeq}, http.StatusOK)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetStatus")

	var req api.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	status := model.TicketStatus(req.Status)
	if !lifecycle.Valid(status) {
		logger.Error(fmt.Sprintf("unknown status %q", req.Status))
		h.writeError(w, fmt.Sprintf("unknown status %q", req.Status), http.StatusBadRequest)
		return
	}

	conv, err := h.service.SetStatus(r.Context(), identity, conversationId, status)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to set status: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIConversation(*conv), http.StatusOK)
}

func (h *Handler) SetAssignee(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetAssignee")

	var req api.SetAssigneeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSetAssignee(&req); err != nil {
		logger.Error(fmt.Sprintf("assignee validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("assignee validation failed: %v", err), http.StatusBadRequest)
		return
	}

	exclusive := req.Exclusive != nil && *req.Exclusive

	conv, err := h.service.SetAssignee(r.Context(), identity, conversationId, req.AgentId, exclusive)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to set assignee: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIConversation(*conv), http.StatusOK)
}

func (h *Handler) PublishTyping(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PublishTyping")

	var req api.TypingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	// a stop signal is never throttled, otherwise the indicator would stick
	if req.IsTyping && !h.typingLimiter.Allow(identity.UserID) {
		h.writeServiceError(w, model.ErrRateLimited)
		return
	}

	if err := h.service.Typing(r.Context(), identity, conversationId, req.IsTyping); err != nil {
		logger.Error(fmt.Sprintf("failed to publish typing: %v", err))
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if _, _, err := h.service.Resolve(r.Context(), identity, conversationId); err != nil {
		logger.Error(fmt.Sprintf("failed to resolve conversation %s: %v", conversationId, err))
		h.writeServiceError(w, err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(identity.UserID, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, conversation %s", identity.UserID, conversationId))

	channel := jwt.Channel(conversationId)
	h.writeJSON(w, api.TokenResponse{Token: token, ExpiresAt: expiresAt, Channel: &channel}, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", identity.UserID))

	h.writeJSON(w, api.TokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request, params api.ListTicketsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListTickets")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	var filter model.TicketFilter
	if params.Status != nil && *params.Status != "" {
		status := model.TicketStatus(*params.Status)
		if !lifecycle.Valid(status) {
			h.writeError(w, fmt.Sprintf("unknown status %q", *params.Status), http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}
	if params.Unassigned != nil {
		filter.Unassigned = *params.Unassigned
	}

	tickets, err := h.service.ListTickets(r.Context(), identity, filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list tickets: %v", err))
		h.writeServiceError(w, err)
		return
	}

	apiTickets := make([]api.Conversation, len(tickets))
	for i, t := range tickets {
		apiTickets[i] = toAPIConversation(t)
	}

	h.writeJSON(w, api.ListTicketsResponse{Tickets: apiTickets}, http.StatusOK)
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateTicket")

	var req api.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateTicket(&req); err != nil {
		logger.Error(fmt.Sprintf("ticket validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("ticket validation failed: %v", err), http.StatusBadRequest)
		return
	}

	ticket := model.Ticket{Subject: strings.TrimSpace(req.Subject)}
	if req.Priority != nil {
		ticket.Priority = model.Priority(*req.Priority)
	}
	if req.Content != nil {
		ticket.Content = *req.Content
	}

	conv, err := h.service.CreateTicket(r.Context(), identity, ticket)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create ticket: %v", err))
		h.writeServiceError(w, err)
		return
	}

	logger.Info(fmt.Sprintf("ticket %s opened by %s", conv.ID, identity.UserID))

	h.writeJSON(w, toAPIConversation(*conv), http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func identityFromContext(ctx context.Context) (model.Identity, bool) {
	userID, ok := ctx.Value(config.KeyUUID).(string)
	if !ok || userID == "" {
		return model.Identity{}, false
	}

	role, _ := ctx.Value(config.KeyRole).(string)
	if role == "" {
		role = string(model.UserRoleUser)
	}

	return model.Identity{UserID: userID, Role: model.UserRole(role)}, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInvalidContent),
		errors.Is(err, model.ErrNotTicket),
		errors.Is(err, model.ErrInvalidPeer):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConversationClosed),
		errors.Is(err, model.ErrConflict),
		errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.writeError(w, "internal error", code)
		return
	}
	h.writeError(w, err.Error(), code)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
