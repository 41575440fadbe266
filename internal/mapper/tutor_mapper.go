package mapper

import (
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/model"
)

type TutorMapper struct{}

func NewTutorMapper() *TutorMapper {
	return &TutorMapper{}
}

func (m *TutorMapper) ToEntity(p *model.TutorProfile) *entity.TutorProfile {
	if p == nil {
		return nil
	}
	return &entity.TutorProfile{
		UserId:        p.UserId,
		Headline:      p.Headline,
		Bio:           p.Bio,
		HourlyRate:    p.HourlyRate,
		Currency:      p.Currency,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *TutorMapper) ToModel(p *entity.TutorProfile) *model.TutorProfile {
	if p == nil {
		return nil
	}
	return &model.TutorProfile{
		UserId:        p.UserId,
		Headline:      p.Headline,
		Bio:           p.Bio,
		HourlyRate:    p.HourlyRate,
		Currency:      p.Currency,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *TutorMapper) ToEntities(profiles []*model.TutorProfile) []*entity.TutorProfile {
	entities := make([]*entity.TutorProfile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
