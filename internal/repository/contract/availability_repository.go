package contract

import (
	"context"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.Availability) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Availability, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Availability, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Reserve flips booked=false -> true in one conditional update.
	// Returns false when the slot is absent or already booked, so two
	// concurrent reservations can never both succeed.
	Reserve(ctx context.Context, id uuid.UUID) (bool, error)

	// Release idempotently clears the booked flag.
	Release(ctx context.Context, id uuid.UUID) error
}
