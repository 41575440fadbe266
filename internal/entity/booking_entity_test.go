package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"cancelled stays cancelled", BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			if got := b.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestHoldsSlot(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCompleted, true},
		{BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		if got := b.HoldsSlot(); got != tt.want {
			t.Errorf("HoldsSlot() with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRateable(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	score := 4

	tests := []struct {
		name    string
		booking Booking
		caller  uuid.UUID
		want    bool
	}{
		{"completed unrated by owner", Booking{StudentId: owner, Status: BookingStatusCompleted}, owner, true},
		{"completed unrated by stranger", Booking{StudentId: owner, Status: BookingStatusCompleted}, stranger, false},
		{"pending booking", Booking{StudentId: owner, Status: BookingStatusPending}, owner, false},
		{"already rated", Booking{StudentId: owner, Status: BookingStatusCompleted, RatingScore: &score}, owner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.Rateable(tt.caller); got != tt.want {
				t.Errorf("Rateable() = %v, want %v", got, tt.want)
			}
		})
	}
}
