package events

import "time"

// Domain event codes published to the bus. The notification registry
// maps these codes to user-facing templates.
const (
	TypeBookingCreated   = "BOOKING_CREATED"
	TypeBookingConfirmed = "BOOKING_CONFIRMED"
	TypeBookingCompleted = "BOOKING_COMPLETED"
	TypeBookingCancelled = "BOOKING_CANCELLED"
	TypePaymentCompleted = "PAYMENT_COMPLETED"
	TypePaymentRefunded  = "PAYMENT_REFUNDED"
	TypeReviewReceived   = "REVIEW_RECEIVED"
	TypeChatMessage      = "CHAT_MESSAGE"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOOKING_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
