package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientId uuid.UUID `json:"recipient_id" validate:"required"`
	Body        string    `json:"body" validate:"required,max=4000"`
}

type ChatMessageResponse struct {
	Id          uuid.UUID  `json:"id"`
	SenderId    uuid.UUID  `json:"sender_id"`
	RecipientId uuid.UUID  `json:"recipient_id"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ConversationResponse struct {
	PartnerId   uuid.UUID `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	UnreadCount int64     `json:"unread_count"`
}
