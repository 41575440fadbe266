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

type AvailabilityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AvailabilityMapper
}

func NewAvailabilityRepository(db *gorm.DB) contract.AvailabilityRepository {
	return &AvailabilityRepositoryImpl{
		db:     db,
		mapper: mapper.NewAvailabilityMapper(),
	}
}

func (r *AvailabilityRepositoryImpl) Create(ctx context.Context, slot *entity.Availability) error {
	m := r.mapper.ToModel(slot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*slot = *r.mapper.ToEntity(m)
	return nil
}

func (r *AvailabilityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Availability{}).Error
}

func (r *AvailabilityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Availability, error) {
	var m model.Availability
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AvailabilityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Availability, error) {
	var models []*model.Availability
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AvailabilityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Availability{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Reserve is the check-and-set that prevents double booking: the
// booked=false guard and the flip happen in one UPDATE, so of two
// concurrent attempts exactly one sees RowsAffected==1.
func (r *AvailabilityRepositoryImpl) Reserve(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Availability{}).
		Where("id = ? AND booked = ?", id, false).
		Update("booked", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *AvailabilityRepositoryImpl) Release(ctx context.Context, id uuid.UUID) error {
	// No booked guard: release is idempotent.
	return r.db.WithContext(ctx).Model(&model.Availability{}).
		Where("id = ?", id).
		Update("booked", false).Error
}
