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
	"gorm.io/gorm/clause"
)

type TutorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewTutorRepository(db *gorm.DB) contract.TutorRepository {
	return &TutorRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *TutorRepositoryImpl) Save(ctx context.Context, profile *entity.TutorProfile) error {
	m := r.mapper.ToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorProfile, error) {
	var m model.TutorProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TutorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorProfile, error) {
	var models []*model.TutorProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TutorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TutorProfile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TutorRepositoryImpl) UpdateRating(ctx context.Context, tutorId uuid.UUID, average float64, total int64) error {
	return r.db.WithContext(ctx).Model(&model.TutorProfile{}).
		Where("user_id = ?", tutorId).
		Updates(map[string]interface{}{
			"average_rating": average,
			"total_ratings":  total,
		}).Error
}
