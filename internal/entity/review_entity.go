package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Review is unique per (student, tutor, booking) and may only exist
// for a completed booking owned by the student.
type Review struct {
	Id        uuid.UUID
	BookingId uuid.UUID
	StudentId uuid.UUID
	TutorId   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoundRating rounds an aggregate mean to one decimal place.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}
