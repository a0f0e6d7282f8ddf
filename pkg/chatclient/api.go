package chatclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrBadRequest  = errors.New("bad request")
	ErrConflict    = errors.New("conflict")
	ErrRateLimited = errors.New("rate limited")
)

// APIError is a non-2xx answer. It unwraps to the sentinel matching its status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("conversation api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// API is the request/response half of the client. Identity headers are the ones the
// gateway would normally inject.
type API struct {
	http *resty.Client
}

func NewAPI(baseURL, userID, role string) *API {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-User-Uuid", userID)
	if role != "" {
		client.SetHeader("X-User-Role", role)
	}

	return &API{http: client}
}

func (a *API) do(ctx context.Context, method, path string, body, result interface{}) error {
	req := a.http.R().SetContext(ctx).SetError(&errorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if eb, ok := resp.Error().(*errorBody); ok {
			apiErr.Message = eb.Error
		}
		return apiErr
	}

	return nil
}

func conversationPath(conversationID, suffix string) string {
	return "/api/conversations/" + url.PathEscape(conversationID) + suffix
}

func (a *API) Send(ctx context.Context, conversationID, content, clientMsgID string) (*Message, error) {
	body := map[string]interface{}{"content": content}
	if clientMsgID != "" {
		body["client_msg_id"] = clientMsgID
	}

	var msg Message
	if err := a.do(ctx, http.MethodPost, conversationPath(conversationID, "/messages"), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns messages in seq order, after the given message id when set.
func (a *API) List(ctx context.Context, conversationID, afterID string) ([]Message, error) {
	path := conversationPath(conversationID, "/messages")
	if afterID != "" {
		path += "?after=" + url.QueryEscape(afterID)
	}

	var resp struct {
		Messages []Message `json:"messages"`
	}
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (a *API) MarkRead(ctx context.Context, conversationID string) (ReadResult, error) {
	var res ReadResult
	err := a.do(ctx, http.MethodPost, conversationPath(conversationID, "/read"), nil, &res)
	return res, err
}

func (a *API) SetStatus(ctx context.Context, conversationID, status string) (*Conversation, error) {
	var conv Conversation
	body := map[string]string{"status": status}
	if err := a.do(ctx, http.MethodPatch, conversationPath(conversationID, "/status"), body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) SetAssignee(ctx context.Context, conversationID, agentID string, exclusive bool) (*Conversation, error) {
	var conv Conversation
	body := map[string]interface{}{"agent_id": agentID, "exclusive": exclusive}
	if err := a.do(ctx, http.MethodPatch, conversationPath(conversationID, "/assignee"), body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) Typing(ctx context.Context, conversationID string, isTyping bool) error {
	body := map[string]bool{"is_typing": isTyping}
	return a.do(ctx, http.MethodPost, conversationPath(conversationID, "/typing"), body, nil)
}

func (a *API) Conversation(ctx context.Context, conversationID string) (*Conversation, error) {
	var conv Conversation
	if err := a.do(ctx, http.MethodGet, conversationPath(conversationID, ""), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) Conversations(ctx context.Context) ([]ConversationPreview, error) {
	var resp struct {
		Conversations []ConversationPreview `json:"conversations"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/conversations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// Direct resolves the direct conversation of a booking, or with a peer when bookingID is empty.
func (a *API) Direct(ctx context.Context, bookingID, peerID string) (*Conversation, error) {
	body := map[string]string{}
	if bookingID != "" {
		body["booking_id"] = bookingID
	} else {
		body["peer_id"] = peerID
	}

	var conv Conversation
	if err := a.do(ctx, http.MethodPost, "/api/conversations/direct", body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) OpenTicket(ctx context.Context, subject, priority, content string) (*Conversation, error) {
	body := map[string]string{"subject": subject}
	if priority != "" {
		body["priority"] = priority
	}
	if content != "" {
		body["content"] = content
	}

	var conv Conversation
	if err := a.do(ctx, http.MethodPost, "/api/tickets", body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) Tickets(ctx context.Context, status string, unassigned bool) ([]Conversation, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if unassigned {
		query.Set("unassigned", strconv.FormatBool(true))
	}

	path := "/api/tickets"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp struct {
		Tickets []Conversation `json:"tickets"`
	}
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tickets, nil
}

func (a *API) ConnectToken(ctx context.Context) (*Token, error) {
	var token Token
	if err := a.do(ctx, http.MethodGet, "/api/realtime/token", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (a *API) SubscribeToken(ctx context.Context, conversationID string) (*Token, error) {
	var token Token
	if err := a.do(ctx, http.MethodGet, conversationPath(conversationID, "/subscribe-token"), nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
