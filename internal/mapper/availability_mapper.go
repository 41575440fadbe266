package mapper

import (
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/model"
)

type AvailabilityMapper struct{}

func NewAvailabilityMapper() *AvailabilityMapper {
	return &AvailabilityMapper{}
}

func (m *AvailabilityMapper) ToEntity(a *model.Availability) *entity.Availability {
	if a == nil {
		return nil
	}
	return &entity.Availability{
		Id:        a.Id,
		TutorId:   a.TutorId,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Booked:    a.Booked,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AvailabilityMapper) ToModel(a *entity.Availability) *model.Availability {
	if a == nil {
		return nil
	}
	return &model.Availability{
		Id:        a.Id,
		TutorId:   a.TutorId,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Booked:    a.Booked,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AvailabilityMapper) ToEntities(slots []*model.Availability) []*entity.Availability {
	entities := make([]*entity.Availability, len(slots))
	for i, a := range slots {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
