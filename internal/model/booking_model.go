package model

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	TutorId        uuid.UUID `gorm:"type:uuid;not null;index"`
	AvailabilityId uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime      time.Time `gorm:"not null"`
	EndTime        time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus  string    `gorm:"type:varchar(20);not null;default:'unpaid'"`
	Amount         float64   `gorm:"type:numeric(10,2);not null"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'USD'"`
	RatingScore    *int      `gorm:""`
	RatingComment  *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
