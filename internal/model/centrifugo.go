package model

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type CentrifugoEvent struct {
	Method string                `json:"method"`
	Params CentrifugoEventParams `json:"params"`
}

type CentrifugoEventParams struct {
	Channel        string `json:"channel"`
	Data           Event  `json:"data"`
	SkipHistory    bool   `json:"skip_history,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type CentrifugoReply struct {
	Error *CentrifugoError `json:"error,omitempty"`
}

type CentrifugoError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CentrifugoError) Error() string {
	return fmt.Sprintf("centrifugo error %d: %s", e.Code, e.Message)
}

type ConnectClaims struct {
	jwt.RegisteredClaims

	Role UserRole `json:"role"`
}

type SubscribeClaims struct {
	jwt.RegisteredClaims

	// Centrifugo reads channel and client, the websocket hub reads the rest
	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}
