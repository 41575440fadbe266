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

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}).Error
}

func (r *ReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	var m model.Review
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var models []*model.Review
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Review{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewRepositoryImpl) AggregateForTutor(ctx context.Context, tutorId uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   *float64
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("AVG(rating) as avg, COUNT(*) as total").
		Where("tutor_id = ?", tutorId).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	if result.Avg == nil {
		return 0, 0, nil
	}
	return *result.Avg, result.Total, nil
}
