package contract

import (
	"context"

	"tutorhive-be/internal/entity"

	"github.com/google/uuid"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, msg *entity.ChatMessage) error
	GetConversation(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entity.ChatMessage, int64, error)
	ListConversations(ctx context.Context, userId uuid.UUID) ([]*entity.Conversation, error)
	MarkRead(ctx context.Context, recipientId, senderId uuid.UUID) error
}
