package model

import (
	"time"

	"github.com/google/uuid"
)

type TutorProfile struct {
	UserId        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Headline      *string   `gorm:"type:varchar(255)"`
	Bio           *string   `gorm:"type:text"`
	HourlyRate    float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Currency      string    `gorm:"type:varchar(3);not null;default:'USD'"`
	AverageRating float64   `gorm:"type:numeric(3,1);not null;default:0"`
	TotalRatings  int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (TutorProfile) TableName() string {
	return "tutor_profiles"
}
