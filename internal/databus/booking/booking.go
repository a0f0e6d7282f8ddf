package booking

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
)

type Handler struct {
	dbR DBRepo
}

func New(dbR DBRepo) *Handler {
	return &Handler{dbR: dbR}
}

// Handler stores the two parties of a confirmed booking so their ride chat can be resolved.
// Malformed payloads are logged and skipped, never retried.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("BookingConfirmed")

	var msg model.BookingParticipants
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal booking message: %v", err))
		return nil
	}

	if msg.BookingID == "" || msg.DriverID == "" || msg.PassengerID == "" {
		logger.Warn(fmt.Sprintf("skipping incomplete booking message: %s", string(in)))
		return nil
	}

	if msg.DriverID == msg.PassengerID {
		logger.Warn(fmt.Sprintf("skipping booking %s: driver and passenger are the same user", msg.BookingID))
		return nil
	}

	if err := h.dbR.UpsertBooking(ctx, msg); err != nil {
		logger.Error(fmt.Sprintf("failed to save booking %s: %v", msg.BookingID, err))
		return fmt.Errorf("failed to save booking: %w", err)
	}

	logger.Info(fmt.Sprintf("booking %s saved", msg.BookingID))
	return nil
}
