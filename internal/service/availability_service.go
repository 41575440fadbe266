package service

import (
	"context"
	"fmt"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAvailabilityService interface {
	Create(ctx context.Context, tutorId uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	ListForTutor(ctx context.Context, tutorId uuid.UUID, onlyOpen bool) ([]dto.AvailabilityResponse, error)
	Delete(ctx context.Context, tutorId, slotId uuid.UUID) error
}

type availabilityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAvailabilityService(uowFactory unitofwork.RepositoryFactory) IAvailabilityService {
	return &availabilityService{uowFactory: uowFactory}
}

func toAvailabilityResponse(a *entity.Availability) dto.AvailabilityResponse {
	return dto.AvailabilityResponse{
		Id:        a.Id,
		TutorId:   a.TutorId,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Booked:    a.Booked,
		CreatedAt: a.CreatedAt,
	}
}

func (s *availabilityService) Create(ctx context.Context, tutorId uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	slot := &entity.Availability{
		Id:        uuid.New(),
		TutorId:   tutorId,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, _ := uow.TutorRepository().FindOne(ctx, specification.ByUser{UserId: tutorId})
	if profile == nil {
		return nil, fmt.Errorf("%w: publish a tutor profile before opening slots", ErrForbidden)
	}

	// Reject slots overlapping an existing one for the same tutor.
	overlapping, err := uow.AvailabilityRepository().Count(ctx,
		specification.ByTutor{TutorId: tutorId},
		specification.Overlapping{Start: req.StartTime, End: req.EndTime},
	)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("%w: slot overlaps an existing one", ErrConflict)
	}

	if err := uow.AvailabilityRepository().Create(ctx, slot); err != nil {
		return nil, err
	}

	resp := toAvailabilityResponse(slot)
	return &resp, nil
}

func (s *availabilityService) ListForTutor(ctx context.Context, tutorId uuid.UUID, onlyOpen bool) ([]dto.AvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByTutor{TutorId: tutorId},
		specification.OrderBy{Field: "start_time"},
	}
	if onlyOpen {
		specs = append(specs, specification.OnlyOpen{})
	}

	slots, err := uow.AvailabilityRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AvailabilityResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, toAvailabilityResponse(slot))
	}
	return responses, nil
}

func (s *availabilityService) Delete(ctx context.Context, tutorId, slotId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slot, err := uow.AvailabilityRepository().FindOne(ctx, specification.ByID{ID: slotId})
	if err != nil || slot == nil {
		return fmt.Errorf("%w: availability slot", ErrNotFound)
	}
	if slot.TutorId != tutorId {
		return fmt.Errorf("%w: slot belongs to another tutor", ErrForbidden)
	}
	if slot.Booked {
		return fmt.Errorf("%w: slot has an active booking", ErrConflict)
	}

	return uow.AvailabilityRepository().Delete(ctx, slotId)
}
