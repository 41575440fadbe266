package mapper

import (
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:             b.Id,
		StudentId:      b.StudentId,
		TutorId:        b.TutorId,
		AvailabilityId: b.AvailabilityId,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         entity.BookingStatus(b.Status),
		PaymentStatus:  entity.PaymentState(b.PaymentStatus),
		Amount:         b.Amount,
		Currency:       b.Currency,
		RatingScore:    b.RatingScore,
		RatingComment:  b.RatingComment,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:             b.Id,
		StudentId:      b.StudentId,
		TutorId:        b.TutorId,
		AvailabilityId: b.AvailabilityId,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		Amount:         b.Amount,
		Currency:       b.Currency,
		RatingScore:    b.RatingScore,
		RatingComment:  b.RatingComment,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (m *BookingMapper) ToEntities(bookings []*model.Booking) []*entity.Booking {
	entities := make([]*entity.Booking, len(bookings))
	for i, b := range bookings {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
