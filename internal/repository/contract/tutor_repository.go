package contract

import (
	"context"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TutorRepository interface {
	Save(ctx context.Context, profile *entity.TutorProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateRating overwrites the stored aggregate after a review mutation.
	UpdateRating(ctx context.Context, tutorId uuid.UUID, average float64, total int64) error
}
