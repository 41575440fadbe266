package entity

import (
	"testing"
	"time"
)

func TestAvailabilityValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid window", now, now.Add(time.Hour), false},
		{"end before start", now.Add(time.Hour), now, true},
		{"zero length", now, now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Availability{StartTime: tt.start, EndTime: tt.end}
			err := a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
