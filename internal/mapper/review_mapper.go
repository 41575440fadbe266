package mapper

import (
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}
	return &entity.Review{
		Id:        r.Id,
		BookingId: r.BookingId,
		StudentId: r.StudentId,
		TutorId:   r.TutorId,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *ReviewMapper) ToModel(r *entity.Review) *model.Review {
	if r == nil {
		return nil
	}
	return &model.Review{
		Id:        r.Id,
		BookingId: r.BookingId,
		StudentId: r.StudentId,
		TutorId:   r.TutorId,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *ReviewMapper) ToEntities(reviews []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
