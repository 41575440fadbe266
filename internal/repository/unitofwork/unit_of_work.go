package unitofwork

import (
	"context"

	"tutorhive-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TutorRepository() contract.TutorRepository
	AvailabilityRepository() contract.AvailabilityRepository
	BookingRepository() contract.BookingRepository
	PaymentRepository() contract.PaymentRepository
	ReviewRepository() contract.ReviewRepository
	ChatRepository() contract.ChatRepository
}
