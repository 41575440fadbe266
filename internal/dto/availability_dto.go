package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAvailabilityRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

type AvailabilityResponse struct {
	Id        uuid.UUID `json:"id"`
	TutorId   uuid.UUID `json:"tutor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Booked    bool      `json:"booked"`
	CreatedAt time.Time `json:"created_at"`
}
