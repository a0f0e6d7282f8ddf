package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidContent     = errors.New("message content is empty")
	ErrConversationClosed = errors.New("conversation is closed")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotTicket          = errors.New("conversation is not a ticket")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrInvalidPeer        = errors.New("peer must be a different user")
)
