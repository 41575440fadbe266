package contract

import (
	"context"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, state entity.PaymentState) error
	AttachRating(ctx context.Context, id uuid.UUID, score int, comment *string) error
}
