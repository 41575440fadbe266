package integration

import (
	"context"
	"testing"
	"time"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/memory"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, uowFactory unitofwork.RepositoryFactory, status entity.BookingStatus) (studentId uuid.UUID, booking *entity.Booking) {
	t.Helper()
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	student := &entity.User{
		Id:       uuid.New(),
		Email:    "student-review-" + uuid.NewString() + "@example.com",
		FullName: "Review Student",
		Role:     entity.UserRoleStudent,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, student))

	tutor := &entity.User{
		Id:       uuid.New(),
		Email:    "tutor-review-" + uuid.NewString() + "@example.com",
		FullName: "Review Tutor",
		Role:     entity.UserRoleTutor,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, tutor))

	start := time.Now().Add(-24 * time.Hour).Truncate(time.Hour)
	slot := &entity.Availability{
		Id:        uuid.New(),
		TutorId:   tutor.Id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Booked:    true,
	}
	require.NoError(t, uow.AvailabilityRepository().Create(ctx, slot))

	booking = &entity.Booking{
		Id:             uuid.New(),
		StudentId:      student.Id,
		TutorId:        tutor.Id,
		AvailabilityId: slot.Id,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		Status:         status,
		PaymentStatus:  entity.PaymentStatePaid,
		Amount:         100,
		Currency:       "USD",
	}
	require.NoError(t, uow.BookingRepository().Create(ctx, booking))

	return student.Id, booking
}

// Reviewing an incomplete booking is a validation error; reviewing the
// same booking twice is a conflict.
func TestReviewErrorTaxonomy(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	reviewService := service.NewReviewService(uowFactory, memory.NewTutorCache(), nil)

	t.Run("incomplete booking rejected as validation error", func(t *testing.T) {
		studentId, booking := seedBooking(t, uowFactory, entity.BookingStatusPending)

		_, err := reviewService.Create(ctx, studentId, &dto.CreateReviewRequest{
			BookingId: booking.Id,
			Rating:    5,
		})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("duplicate review rejected as conflict", func(t *testing.T) {
		studentId, booking := seedBooking(t, uowFactory, entity.BookingStatusCompleted)

		_, err := reviewService.Create(ctx, studentId, &dto.CreateReviewRequest{
			BookingId: booking.Id,
			Rating:    4,
			Comment:   "great session",
		})
		require.NoError(t, err)

		_, err = reviewService.Create(ctx, studentId, &dto.CreateReviewRequest{
			BookingId: booking.Id,
			Rating:    5,
		})
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("foreign booking rejected as forbidden", func(t *testing.T) {
		_, booking := seedBooking(t, uowFactory, entity.BookingStatusCompleted)

		_, err := reviewService.Create(ctx, uuid.New(), &dto.CreateReviewRequest{
			BookingId: booking.Id,
			Rating:    5,
		})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}
