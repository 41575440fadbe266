package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	AvailabilityId uuid.UUID `json:"availability_id" validate:"required"`
}

type RateBookingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	Id             uuid.UUID `json:"id"`
	StudentId      uuid.UUID `json:"student_id"`
	TutorId        uuid.UUID `json:"tutor_id"`
	AvailabilityId uuid.UUID `json:"availability_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	RatingScore    *int      `json:"rating_score,omitempty"`
	RatingComment  *string   `json:"rating_comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
