package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByTutor filters by tutor_id
type ByTutor struct {
	TutorId uuid.UUID
}

func (s ByTutor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tutor_id = ?", s.TutorId)
}

// ByStudent filters by student_id
type ByStudent struct {
	StudentId uuid.UUID
}

func (s ByStudent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentId)
}

// ByBooking filters by booking_id
type ByBooking struct {
	BookingId uuid.UUID
}

func (s ByBooking) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("booking_id = ?", s.BookingId)
}

// ByStatus filters by a status column value
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByRole filters users by role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// OnlyOpen keeps availability slots that are still bookable
type OnlyOpen struct{}

func (s OnlyOpen) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("booked = ?", false)
}

// StartingAfter keeps rows whose start_time is after the given instant
type StartingAfter struct {
	At time.Time
}

func (s StartingAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time > ?", s.At)
}

// ByTokenHash filters refresh tokens by their stored hash
type ByTokenHash struct {
	Hash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.Hash)
}

// ByProviderOrder filters payments by the provider order id
type ByProviderOrder struct {
	OrderId string
}

func (s ByProviderOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider_order_id = ?", s.OrderId)
}

// ByUser filters rows keyed by user_id
type ByUser struct {
	UserId uuid.UUID
}

func (s ByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// Overlapping keeps rows whose [start_time, end_time) intersects the
// given window.
type Overlapping struct {
	Start time.Time
	End   time.Time
}

func (s Overlapping) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time < ? AND end_time > ?", s.End, s.Start)
}
