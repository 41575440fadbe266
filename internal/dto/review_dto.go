package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingId uuid.UUID `json:"booking_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	Id        uuid.UUID `json:"id"`
	BookingId uuid.UUID `json:"booking_id"`
	StudentId uuid.UUID `json:"student_id"`
	TutorId   uuid.UUID `json:"tutor_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListReviewsRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type PaginatedReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	TotalReviews  int64            `json:"totalReviews"`
	TotalPages    int              `json:"totalPages"`
	CurrentPage   int              `json:"currentPage"`
	AverageRating float64          `json:"averageRating"`
}
