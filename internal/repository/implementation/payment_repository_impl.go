package implementation

import (
	"context"
	"errors"
	"time"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/mapper"
	"tutorhive-be/internal/model"
	"tutorhive-be/internal/repository/contract"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	var m model.Payment
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	var models []*model.Payment
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaymentRepositoryImpl) MarkCompleted(ctx context.Context, id uuid.UUID, platformFee, tutorEarnings float64, completedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status NOT IN ?", id, []string{
			string(entity.PaymentStatusCompleted),
			string(entity.PaymentStatusRefunded),
		}).
		Updates(map[string]interface{}{
			"status":         string(entity.PaymentStatusCompleted),
			"platform_fee":   platformFee,
			"tutor_earnings": tutorEarnings,
			"completed_at":   completedAt,
		}).Error
}

func (r *PaymentRepositoryImpl) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, string(entity.PaymentStatusPending)).
		Update("status", string(entity.PaymentStatusFailed)).Error
}

func (r *PaymentRepositoryImpl) MarkRefunded(ctx context.Context, id uuid.UUID, amount float64, reason string, refundedAt time.Time) error {
	// Refunded payments are immutable; the status guard keeps a second
	// refund from overwriting the bookkeeping.
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND status <> ?", id, string(entity.PaymentStatusRefunded)).
		Updates(map[string]interface{}{
			"status":        string(entity.PaymentStatusRefunded),
			"refund_amount": amount,
			"refund_reason": reason,
			"refunded_at":   refundedAt,
		}).Error
}
