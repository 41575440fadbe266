package implementation

import (
	"context"
	"time"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/mapper"
	"tutorhive-be/internal/model"
	"tutorhive-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	return &ChatRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRepositoryImpl) CreateMessage(ctx context.Context, msg *entity.ChatMessage) error {
	m := r.mapper.ToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatRepositoryImpl) GetConversation(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	var total int64
	pair := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA)

	if err := pair.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*model.ChatMessage
	err := pair.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return r.mapper.ToEntities(models), total, nil
}

func (r *ChatRepositoryImpl) ListConversations(ctx context.Context, userId uuid.UUID) ([]*entity.Conversation, error) {
	// Latest message per partner plus unread count, resolved in one
	// window-function query.
	var rows []struct {
		PartnerId   uuid.UUID
		PartnerName string
		LastMessage string
		LastAt      time.Time
		UnreadCount int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (partner_id)
			partner_id,
			u.full_name AS partner_name,
			m.body AS last_message,
			m.created_at AS last_at,
			(SELECT COUNT(*) FROM chat_messages
			 WHERE recipient_id = ? AND sender_id = partner_id AND read_at IS NULL) AS unread_count
		FROM (
			SELECT *,
				CASE WHEN sender_id = ? THEN recipient_id ELSE sender_id END AS partner_id
			FROM chat_messages
			WHERE sender_id = ? OR recipient_id = ?
		) m
		JOIN users u ON u.id = m.partner_id
		ORDER BY partner_id, m.created_at DESC
	`, userId, userId, userId, userId).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	conversations := make([]*entity.Conversation, 0, len(rows))
	for _, row := range rows {
		c := &entity.Conversation{
			PartnerId:   row.PartnerId,
			PartnerName: row.PartnerName,
			LastMessage: row.LastMessage,
			LastAt:      row.LastAt,
			UnreadCount: row.UnreadCount,
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}

func (r *ChatRepositoryImpl) MarkRead(ctx context.Context, recipientId, senderId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientId, senderId).
		Update("read_at", gorm.Expr("NOW()")).Error
}
