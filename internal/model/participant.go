package model

const (
	RoutingKeyBookingPrefix = "booking:"
	RoutingKeyPairPrefix    = "pair:"
)

type Participant struct {
	ConversationID string `db:"conversation_id"`
	UserID         string `db:"user_id"`
}

type BookingParticipants struct {
	BookingID   string `db:"booking_id" json:"booking_id"`
	DriverID    string `db:"driver_id" json:"driver_uuid"`
	PassengerID string `db:"passenger_id" json:"passenger_uuid"`
}

func (b BookingParticipants) Includes(userID string) bool {
	return b.DriverID == userID || b.PassengerID == userID
}

// PairRoutingKey is order independent: (a, b) and (b, a) share a conversation.
func PairRoutingKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return RoutingKeyPairPrefix + a + ":" + b
}

func BookingRoutingKey(bookingID string) string {
	return RoutingKeyBookingPrefix + bookingID
}
