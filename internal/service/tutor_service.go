package service

import (
	"context"
	"fmt"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/memory"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITutorService interface {
	UpsertProfile(ctx context.Context, tutorId uuid.UUID, req *dto.UpsertTutorProfileRequest) (*dto.TutorProfileResponse, error)
	GetProfile(ctx context.Context, tutorId uuid.UUID) (*dto.TutorProfileResponse, error)
	ListTutors(ctx context.Context, req *dto.ListTutorsRequest) ([]dto.TutorProfileResponse, int64, error)
}

type tutorService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.TutorCache
}

func NewTutorService(uowFactory unitofwork.RepositoryFactory, cache *memory.TutorCache) ITutorService {
	return &tutorService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func toTutorResponse(p *entity.TutorProfile) dto.TutorProfileResponse {
	resp := dto.TutorProfileResponse{
		UserId:        p.UserId,
		HourlyRate:    p.HourlyRate,
		Currency:      p.Currency,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
		CreatedAt:     p.CreatedAt,
	}
	if p.Headline != nil {
		resp.Headline = *p.Headline
	}
	if p.Bio != nil {
		resp.Bio = *p.Bio
	}
	return resp
}

func (s *tutorService) UpsertProfile(ctx context.Context, tutorId uuid.UUID, req *dto.UpsertTutorProfileRequest) (*dto.TutorProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tutorId})
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if user.Role != entity.UserRoleTutor {
		return nil, fmt.Errorf("%w: only tutors can publish a profile", ErrForbidden)
	}

	existing, _ := uow.TutorRepository().FindOne(ctx, specification.ByUser{UserId: tutorId})

	profile := &entity.TutorProfile{
		UserId:     tutorId,
		HourlyRate: req.HourlyRate,
		Currency:   req.Currency,
		UpdatedAt:  time.Now(),
	}
	if req.Headline != "" {
		headline := req.Headline
		profile.Headline = &headline
	}
	if req.Bio != "" {
		bio := req.Bio
		profile.Bio = &bio
	}
	if existing != nil {
		profile.AverageRating = existing.AverageRating
		profile.TotalRatings = existing.TotalRatings
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = time.Now()
	}

	if err := uow.TutorRepository().Save(ctx, profile); err != nil {
		return nil, err
	}

	s.cache.Invalidate(tutorId)

	resp := toTutorResponse(profile)
	resp.FullName = user.FullName
	return &resp, nil
}

func (s *tutorService) GetProfile(ctx context.Context, tutorId uuid.UUID) (*dto.TutorProfileResponse, error) {
	if cached, ok := s.cache.Get(tutorId); ok {
		resp := toTutorResponse(cached)
		return &resp, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.TutorRepository().FindOne(ctx, specification.ByUser{UserId: tutorId})
	if err != nil || profile == nil {
		return nil, fmt.Errorf("%w: tutor profile", ErrNotFound)
	}

	s.cache.Save(profile)

	resp := toTutorResponse(profile)
	return &resp, nil
}

func (s *tutorService) ListTutors(ctx context.Context, req *dto.ListTutorsRequest) ([]dto.TutorProfileResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.TutorRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	profiles, err := uow.TutorRepository().FindAll(ctx,
		specification.OrderBy{Field: "average_rating", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.TutorProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, toTutorResponse(p))
	}
	return responses, total, nil
}
