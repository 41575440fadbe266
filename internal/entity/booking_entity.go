package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string
type PaymentState string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	PaymentStateUnpaid   PaymentState = "unpaid"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateRefunded PaymentState = "refunded"
)

type Booking struct {
	Id             uuid.UUID
	StudentId      uuid.UUID
	TutorId        uuid.UUID
	AvailabilityId uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status         BookingStatus
	PaymentStatus  PaymentState
	Amount         float64
	Currency       string
	RatingScore    *int
	RatingComment  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// bookingTransitions is the allowed state machine:
// pending -> confirmed -> completed, cancelled from pending/confirmed.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

func (b *Booking) CanTransition(to BookingStatus) bool {
	for _, allowed := range bookingTransitions[b.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// HoldsSlot reports whether this booking should keep its availability
// slot locked (booked=true on the referenced slot).
func (b *Booking) HoldsSlot() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

// Rateable reports whether the student may still attach a rating.
func (b *Booking) Rateable(studentId uuid.UUID) bool {
	return b.StudentId == studentId &&
		b.Status == BookingStatusCompleted &&
		b.RatingScore == nil
}
