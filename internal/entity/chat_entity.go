package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id          uuid.UUID
	SenderId    uuid.UUID
	RecipientId uuid.UUID
	Body        string
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// Conversation is a chat partner plus the most recent exchange,
// used for the inbox listing.
type Conversation struct {
	PartnerId   uuid.UUID
	PartnerName string
	LastMessage string
	LastAt      time.Time
	UnreadCount int64
}
