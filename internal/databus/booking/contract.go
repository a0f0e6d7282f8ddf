//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package booking

import (
	"context"

	"github.com/s21platform/conversation-service/internal/model"
)

type DBRepo interface {
	UpsertBooking(ctx context.Context, booking model.BookingParticipants) error
}
