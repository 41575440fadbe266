package model

import (
	"time"

	"github.com/google/uuid"
)

type Availability struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TutorId   uuid.UUID `gorm:"type:uuid;not null;index:idx_availabilities_tutor_start,priority:1"`
	StartTime time.Time `gorm:"not null;index:idx_availabilities_tutor_start,priority:2"`
	EndTime   time.Time `gorm:"not null"`
	Booked    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Availability) TableName() string {
	return "availabilities"
}
