package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/memory"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/pkg/events"
	pktNats "tutorhive-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IReviewService interface {
	Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, studentId, reviewId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, studentId, reviewId uuid.UUID) error
	ListForTutor(ctx context.Context, tutorId uuid.UUID, req *dto.ListReviewsRequest) (*dto.PaginatedReviewsResponse, error)
}

type reviewService struct {
	uowFactory     unitofwork.RepositoryFactory
	tutorCache     *memory.TutorCache
	eventPublisher *pktNats.Publisher
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, tutorCache *memory.TutorCache, eventPublisher *pktNats.Publisher) IReviewService {
	return &reviewService{
		uowFactory:     uowFactory,
		tutorCache:     tutorCache,
		eventPublisher: eventPublisher,
	}
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
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

// refreshAggregate rescans the tutor's reviews and overwrites the stored
// average. A tutor with no reviews resets to 0/0.
func (s *reviewService) refreshAggregate(ctx context.Context, uow unitofwork.UnitOfWork, tutorId uuid.UUID) error {
	mean, total, err := uow.ReviewRepository().AggregateForTutor(ctx, tutorId)
	if err != nil {
		return err
	}
	if err := uow.TutorRepository().UpdateRating(ctx, tutorId, entity.RoundRating(mean), total); err != nil {
		return err
	}
	s.tutorCache.Invalidate(tutorId)
	return nil
}

func (s *reviewService) Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: req.BookingId})
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	if booking.StudentId != studentId {
		return nil, fmt.Errorf("%w: booking belongs to another student", ErrForbidden)
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: only completed bookings can be reviewed", ErrValidation)
	}

	existing, _ := uow.ReviewRepository().FindOne(ctx,
		specification.ByStudent{StudentId: studentId},
		specification.ByBooking{BookingId: req.BookingId},
	)
	if existing != nil {
		return nil, fmt.Errorf("%w: booking already reviewed", ErrConflict)
	}

	review := &entity.Review{
		Id:        uuid.New(),
		BookingId: req.BookingId,
		StudentId: studentId,
		TutorId:   booking.TutorId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		// Two racing duplicates both pass the existence check; the loser
		// hits the unique index and still owes the caller a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: booking already reviewed", ErrConflict)
		}
		return nil, err
	}
	if err := s.refreshAggregate(ctx, uow, booking.TutorId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypeReviewReceived,
			Data: map[string]interface{}{
				"user_id":     booking.TutorId.String(),
				"actor_id":    studentId.String(),
				"entity_type": "review",
				"entity_id":   review.Id.String(),
				"rating":      review.Rating,
			},
			OccurredAt: time.Now(),
		})
	}

	resp := toReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, studentId, reviewId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: reviewId})
	if err != nil || review == nil {
		return nil, fmt.Errorf("%w: review", ErrNotFound)
	}
	if review.StudentId != studentId {
		return nil, fmt.Errorf("%w: review belongs to another student", ErrForbidden)
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, err
	}
	if err := s.refreshAggregate(ctx, uow, review.TutorId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	resp := toReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, studentId, reviewId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: reviewId})
	if err != nil || review == nil {
		return fmt.Errorf("%w: review", ErrNotFound)
	}
	if review.StudentId != studentId {
		return fmt.Errorf("%w: review belongs to another student", ErrForbidden)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ReviewRepository().Delete(ctx, reviewId); err != nil {
		return err
	}
	if err := s.refreshAggregate(ctx, uow, review.TutorId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *reviewService) ListForTutor(ctx context.Context, tutorId uuid.UUID, req *dto.ListReviewsRequest) (*dto.PaginatedReviewsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ReviewRepository().Count(ctx, specification.ByTutor{TutorId: tutorId})
	if err != nil {
		return nil, err
	}

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.ByTutor{TutorId: tutorId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	mean, _, err := uow.ReviewRepository().AggregateForTutor(ctx, tutorId)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, toReviewResponse(r))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.PaginatedReviewsResponse{
		Reviews:       responses,
		TotalReviews:  total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		AverageRating: entity.RoundRating(mean),
	}, nil
}
