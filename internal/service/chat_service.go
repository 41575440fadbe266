package service

import (
	"context"
	"fmt"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/pkg/events"
	pktNats "tutorhive-be/pkg/nats"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	GetConversation(ctx context.Context, userId, partnerId uuid.UUID, page, limit int) ([]dto.ChatMessageResponse, int64, error)
	ListConversations(ctx context.Context, userId uuid.UUID) ([]dto.ConversationResponse, error)
	MarkRead(ctx context.Context, userId, partnerId uuid.UUID) error
}

// ChatDelivery pushes a typed frame to a user's live connections.
// Implemented by the websocket Hub.
type ChatDelivery interface {
	SendEvent(userID uuid.UUID, frameType string, payload interface{})
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	delivery       ChatDelivery
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, delivery ChatDelivery) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		delivery:       delivery,
	}
}

func toChatMessageResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:          m.Id,
		SenderId:    m.SenderId,
		RecipientId: m.RecipientId,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}

func (s *chatService) Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	if req.RecipientId == senderId {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: senderId})
	if err != nil || sender == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	recipient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.RecipientId})
	if err != nil || recipient == nil {
		return nil, fmt.Errorf("%w: recipient", ErrNotFound)
	}

	msg := &entity.ChatMessage{
		Id:          uuid.New(),
		SenderId:    senderId,
		RecipientId: req.RecipientId,
		Body:        req.Body,
		CreatedAt:   time.Now(),
	}
	if err := uow.ChatRepository().CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypeChatMessage,
			Data: map[string]interface{}{
				"user_id":     req.RecipientId.String(),
				"actor_id":    senderId.String(),
				"sender_name": sender.FullName,
				"entity_type": "message",
				"entity_id":   msg.Id.String(),
			},
			OccurredAt: time.Now(),
		})
	}

	resp := toChatMessageResponse(msg)

	// Live frame straight to the recipient's open sockets; the inbox
	// notification rides the event bus separately.
	if s.delivery != nil {
		s.delivery.SendEvent(req.RecipientId, "chat_message", resp)
	}

	return &resp, nil
}

func (s *chatService) GetConversation(ctx context.Context, userId, partnerId uuid.UUID, page, limit int) ([]dto.ChatMessageResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, total, err := uow.ChatRepository().GetConversation(ctx, userId, partnerId, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, toChatMessageResponse(m))
	}
	return responses, total, nil
}

func (s *chatService) ListConversations(ctx context.Context, userId uuid.UUID) ([]dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ChatRepository().ListConversations(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		responses = append(responses, dto.ConversationResponse{
			PartnerId:   c.PartnerId,
			PartnerName: c.PartnerName,
			LastMessage: c.LastMessage,
			LastAt:      c.LastAt,
			UnreadCount: c.UnreadCount,
		})
	}
	return responses, nil
}

func (s *chatService) MarkRead(ctx context.Context, userId, partnerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatRepository().MarkRead(ctx, userId, partnerId)
}
