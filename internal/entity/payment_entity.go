package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PlatformFeeRate is the flat marketplace cut. Not configurable.
const PlatformFeeRate = 0.10

type Payment struct {
	Id              uuid.UUID
	BookingId       uuid.UUID
	StudentId       uuid.UUID
	TutorId         uuid.UUID
	Amount          float64
	Currency        string
	Status          PaymentStatus
	PlatformFee     float64
	TutorEarnings   float64
	ProviderOrderId *string
	SnapToken       *string
	CompletedAt     *time.Time
	RefundAmount    *float64
	RefundReason    *string
	RefundedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FeeSplit derives the platform fee and tutor earnings from a gross
// amount. Computed once at completion time and stored, never re-derived.
func FeeSplit(amount float64) (platformFee, tutorEarnings float64) {
	platformFee = round2(amount * PlatformFeeRate)
	tutorEarnings = round2(amount - platformFee)
	return platformFee, tutorEarnings
}
