package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingId       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	StudentId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TutorId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount          float64    `gorm:"type:numeric(10,2);not null"`
	Currency        string     `gorm:"type:varchar(3);not null;default:'USD'"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'"`
	PlatformFee     float64    `gorm:"type:numeric(10,2);not null;default:0"`
	TutorEarnings   float64    `gorm:"type:numeric(10,2);not null;default:0"`
	ProviderOrderId *string    `gorm:"type:varchar(255);uniqueIndex"`
	SnapToken       *string    `gorm:"type:varchar(255)"`
	CompletedAt     *time.Time
	RefundAmount    *float64   `gorm:"type:numeric(10,2)"`
	RefundReason    *string    `gorm:"type:text"`
	RefundedAt      *time.Time
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
