package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId    uuid.UUID  `gorm:"type:uuid;not null;index:idx_chat_pair,priority:1"`
	RecipientId uuid.UUID  `gorm:"type:uuid;not null;index:idx_chat_pair,priority:2"`
	Body        string     `gorm:"type:text;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
