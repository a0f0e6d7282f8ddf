//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package realtime

import (
	"context"

	"github.com/s21platform/conversation-service/internal/model"
)

// Relay carries events to the other service instances.
type Relay interface {
	Publish(ctx context.Context, event model.Event) error
}

type TokenValidator interface {
	ValidateConnectToken(token string) (*model.ConnectClaims, error)
	ValidateSubscribeToken(token string) (*model.SubscribeClaims, error)
}

type Typer interface {
	Typing(ctx context.Context, identity model.Identity, conversationID string, isTyping bool) error
}
