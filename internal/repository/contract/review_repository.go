package contract

import (
	"context"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AggregateForTutor rescans the tutor's reviews and returns the raw
	// mean (unrounded) and count. Zero reviews yields (0, 0, nil).
	AggregateForTutor(ctx context.Context, tutorId uuid.UUID) (float64, int64, error)
}
