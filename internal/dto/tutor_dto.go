package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertTutorProfileRequest struct {
	Headline   string  `json:"headline" validate:"omitempty,max=120"`
	Bio        string  `json:"bio" validate:"omitempty,max=2000"`
	HourlyRate float64 `json:"hourly_rate" validate:"required,gt=0"`
	Currency   string  `json:"currency" validate:"required,len=3"`
}

type TutorProfileResponse struct {
	UserId        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name,omitempty"`
	Headline      string    `json:"headline,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	HourlyRate    float64   `json:"hourly_rate"`
	Currency      string    `json:"currency"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListTutorsRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
