package implementation

import (
	"context"
	"errors"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/mapper"
	"tutorhive-be/internal/model"
	"tutorhive-be/internal/repository/contract"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	var m model.Booking
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	var models []*model.Booking
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, state entity.PaymentState) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Update("payment_status", string(state)).Error
}

func (r *BookingRepositoryImpl) AttachRating(ctx context.Context, id uuid.UUID, score int, comment *string) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating_score":   score,
			"rating_comment": comment,
		}).Error
}
