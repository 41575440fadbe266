package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTimeRange = errors.New("start time must be before end time")

// Availability is one bookable time slot published by a tutor.
// The Booked flag is only ever flipped through the repository's
// conditional update so two reservations cannot race.
type Availability struct {
	Id        uuid.UUID
	TutorId   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Booked    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Availability) Validate() error {
	if !a.StartTime.Before(a.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
