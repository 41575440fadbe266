package contract

import (
	"context"
	"time"

	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)

	MarkCompleted(ctx context.Context, id uuid.UUID, platformFee, tutorEarnings float64, completedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkRefunded(ctx context.Context, id uuid.UUID, amount float64, reason string, refundedAt time.Time) error
}
