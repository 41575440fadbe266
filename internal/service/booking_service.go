package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/pkg/events"
	pktNats "tutorhive-be/pkg/nats"

	"github.com/google/uuid"
)

type IBookingService interface {
	Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Get(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	ListForStudent(ctx context.Context, studentId uuid.UUID, page, limit int) ([]dto.BookingResponse, error)
	ListForTutor(ctx context.Context, tutorId uuid.UUID, page, limit int) ([]dto.BookingResponse, error)
	Confirm(ctx context.Context, tutorId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	Complete(ctx context.Context, tutorId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	Rate(ctx context.Context, studentId, bookingId uuid.UUID, req *dto.RateBookingRequest) (*dto.BookingResponse, error)
}

type bookingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	mailPublisher  IPublisherService
}

func NewBookingService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, mailPublisher IPublisherService) IBookingService {
	return &bookingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		mailPublisher:  mailPublisher,
	}
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
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
	}
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *entity.Booking, userId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id":     userId.String(),
			"entity_type": "booking",
			"entity_id":   booking.Id.String(),
			"start_time":  booking.StartTime.Format(time.RFC3339),
			"amount":      booking.Amount,
		},
		OccurredAt: time.Now(),
	}
	// Delivery is best-effort, a booking must not fail because the bus is down.
	_ = s.eventPublisher.Publish(ctx, event)
}

// Create reserves the slot and books it in one transaction. The reserve
// step is a conditional update on the booked flag, so when two students
// race for the same slot exactly one Create succeeds.
func (s *bookingService) Create(ctx context.Context, studentId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slot, err := uow.AvailabilityRepository().FindOne(ctx, specification.ByID{ID: req.AvailabilityId})
	if err != nil || slot == nil {
		return nil, fmt.Errorf("%w: availability slot", ErrNotFound)
	}
	if slot.TutorId == studentId {
		return nil, fmt.Errorf("%w: cannot book your own slot", ErrValidation)
	}

	profile, err := uow.TutorRepository().FindOne(ctx, specification.ByUser{UserId: slot.TutorId})
	if err != nil || profile == nil {
		return nil, fmt.Errorf("%w: tutor profile", ErrNotFound)
	}

	hours := slot.EndTime.Sub(slot.StartTime).Hours()
	amount := math.Round(profile.HourlyRate*hours*100) / 100

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	reserved, err := uow.AvailabilityRepository().Reserve(ctx, slot.Id)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, fmt.Errorf("%w: slot already booked", ErrConflict)
	}

	booking := &entity.Booking{
		Id:             uuid.New(),
		StudentId:      studentId,
		TutorId:        slot.TutorId,
		AvailabilityId: slot.Id,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		Status:         entity.BookingStatusPending,
		PaymentStatus:  entity.PaymentStateUnpaid,
		Amount:         amount,
		Currency:       profile.Currency,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		Id:        uuid.New(),
		BookingId: booking.Id,
		StudentId: studentId,
		TutorId:   slot.TutorId,
		Amount:    amount,
		Currency:  profile.Currency,
		Status:    entity.PaymentStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeBookingCreated, booking, slot.TutorId)

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) Get(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	if booking.StudentId != userId && booking.TutorId != userId {
		return nil, fmt.Errorf("%w: not a participant of this booking", ErrForbidden)
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListForStudent(ctx context.Context, studentId uuid.UUID, page, limit int) ([]dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookings, err := uow.BookingRepository().FindAll(ctx,
		specification.ByStudent{StudentId: studentId},
		specification.OrderBy{Field: "start_time", Desc: true},
		pageSpec(page, limit),
	)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func (s *bookingService) ListForTutor(ctx context.Context, tutorId uuid.UUID, page, limit int) ([]dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookings, err := uow.BookingRepository().FindAll(ctx,
		specification.ByTutor{TutorId: tutorId},
		specification.OrderBy{Field: "start_time", Desc: true},
		pageSpec(page, limit),
	)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func pageSpec(page, limit int) specification.Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return specification.Pagination{Limit: limit, Offset: (page - 1) * limit}
}

func toBookingResponses(bookings []*entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}
	return responses
}

func (s *bookingService) Confirm(ctx context.Context, tutorId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	resp, err := s.transition(ctx, bookingId, entity.BookingStatusConfirmed, func(b *entity.Booking) error {
		if b.TutorId != tutorId {
			return fmt.Errorf("%w: only the tutor can confirm", ErrForbidden)
		}
		return nil
	}, events.TypeBookingConfirmed)
	if err == nil {
		s.queueMail(ctx, resp, dto.MailKindBookingConfirmation)
	}
	return resp, err
}

// queueMail hands the student-facing email to the async worker.
func (s *bookingService) queueMail(ctx context.Context, booking *dto.BookingResponse, kind string) {
	if s.mailPublisher == nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: booking.StudentId})
	if err != nil || student == nil {
		return
	}
	tutor, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: booking.TutorId})
	tutorName := "your tutor"
	if tutor != nil {
		tutorName = tutor.FullName
	}
	_ = s.mailPublisher.PublishMailJob(&dto.MailJobMessage{
		Kind:      kind,
		ToEmail:   student.Email,
		TutorName: tutorName,
		StartTime: booking.StartTime,
	})
}

func (s *bookingService) Complete(ctx context.Context, tutorId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, bookingId, entity.BookingStatusCompleted, func(b *entity.Booking) error {
		if b.TutorId != tutorId {
			return fmt.Errorf("%w: only the tutor can complete", ErrForbidden)
		}
		return nil
	}, events.TypeBookingCompleted)
}

func (s *bookingService) transition(ctx context.Context, bookingId uuid.UUID, to entity.BookingStatus, authorize func(*entity.Booking) error, eventType string) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	if err := authorize(booking); err != nil {
		return nil, err
	}
	if !booking.CanTransition(to) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s", ErrConflict, booking.Status, to)
	}

	if err := uow.BookingRepository().UpdateStatus(ctx, bookingId, to); err != nil {
		return nil, err
	}
	booking.Status = to

	s.publish(ctx, eventType, booking, booking.StudentId)

	resp := toBookingResponse(booking)
	return &resp, nil
}

// Cancel releases the reserved slot. A second cancel of the same
// booking is a no-op that returns the current state.
func (s *bookingService) Cancel(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	if booking.StudentId != userId && booking.TutorId != userId {
		return nil, fmt.Errorf("%w: not a participant of this booking", ErrForbidden)
	}

	if booking.Status == entity.BookingStatusCancelled {
		resp := toBookingResponse(booking)
		return &resp, nil
	}
	if !booking.CanTransition(entity.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: completed bookings cannot be cancelled", ErrConflict)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.BookingRepository().UpdateStatus(ctx, bookingId, entity.BookingStatusCancelled); err != nil {
		return nil, err
	}
	if err := uow.AvailabilityRepository().Release(ctx, booking.AvailabilityId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatusCancelled

	other := booking.TutorId
	if userId == booking.TutorId {
		other = booking.StudentId
	}
	s.publish(ctx, events.TypeBookingCancelled, booking, other)

	resp := toBookingResponse(booking)
	s.queueMail(ctx, &resp, dto.MailKindBookingCancelled)
	return &resp, nil
}

func (s *bookingService) Rate(ctx context.Context, studentId, bookingId uuid.UUID, req *dto.RateBookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	if booking.StudentId != studentId {
		return nil, fmt.Errorf("%w: only the booking's student can rate it", ErrForbidden)
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: only completed bookings can be rated", ErrConflict)
	}
	if booking.RatingScore != nil {
		return nil, fmt.Errorf("%w: booking already rated", ErrConflict)
	}

	var comment *string
	if req.Comment != "" {
		c := req.Comment
		comment = &c
	}
	if err := uow.BookingRepository().AttachRating(ctx, bookingId, req.Score, comment); err != nil {
		return nil, err
	}

	booking.RatingScore = &req.Score
	booking.RatingComment = comment

	resp := toBookingResponse(booking)
	return &resp, nil
}
