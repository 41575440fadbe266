package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_unique,priority:3"`
	StudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_unique,priority:1"`
	TutorId   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_unique,priority:2"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
