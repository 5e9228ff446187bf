package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/users/user/model"
)

type CompleteProfileRequest struct {
	UserRole        string `json:"user_role" validate:"required,oneof=student organizer"`
	UserInstitution string `json:"user_institution" validate:"required,min=2,max=120"`
}

type UserResponse struct {
	UserID               uuid.UUID `json:"user_id"`
	UserName             string    `json:"user_name"`
	UserEmail            string    `json:"user_email"`
	UserInstitution      string    `json:"user_institution"`
	UserRole             string    `json:"user_role"`
	UserProfileCompleted bool      `json:"user_profile_completed"`
	UserIsActive         bool      `json:"user_is_active"`
	UserCreatedAt        string    `json:"user_created_at"`
}

func ToUserResponse(u *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:               u.UserID,
		UserName:             u.UserName,
		UserEmail:            u.UserEmail,
		UserInstitution:      u.UserInstitution,
		UserRole:             u.UserRole,
		UserProfileCompleted: u.UserProfileCompleted,
		UserIsActive:         u.UserIsActive,
		UserCreatedAt:        u.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
