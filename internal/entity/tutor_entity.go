package entity

import (
	"time"

	"github.com/google/uuid"
)

// TutorProfile carries the public tutor listing data plus the
// aggregate rating maintained by the review service.
type TutorProfile struct {
	UserId        uuid.UUID
	Headline      *string
	Bio           *string
	HourlyRate    float64
	Currency      string
	AverageRating float64
	TotalRatings  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
