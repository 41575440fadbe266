package dto

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,min=3"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}
