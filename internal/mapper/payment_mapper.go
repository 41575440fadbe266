package mapper

import (
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:              p.Id,
		BookingId:       p.BookingId,
		StudentId:       p.StudentId,
		TutorId:         p.TutorId,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          entity.PaymentStatus(p.Status),
		PlatformFee:     p.PlatformFee,
		TutorEarnings:   p.TutorEarnings,
		ProviderOrderId: p.ProviderOrderId,
		SnapToken:       p.SnapToken,
		CompletedAt:     p.CompletedAt,
		RefundAmount:    p.RefundAmount,
		RefundReason:    p.RefundReason,
		RefundedAt:      p.RefundedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:              p.Id,
		BookingId:       p.BookingId,
		StudentId:       p.StudentId,
		TutorId:         p.TutorId,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          string(p.Status),
		PlatformFee:     p.PlatformFee,
		TutorEarnings:   p.TutorEarnings,
		ProviderOrderId: p.ProviderOrderId,
		SnapToken:       p.SnapToken,
		CompletedAt:     p.CompletedAt,
		RefundAmount:    p.RefundAmount,
		RefundReason:    p.RefundReason,
		RefundedAt:      p.RefundedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToEntities(payments []*model.Payment) []*entity.Payment {
	entities := make([]*entity.Payment, len(payments))
	for i, p := range payments {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
