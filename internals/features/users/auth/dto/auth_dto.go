package dto

import (
	userdto "campushub_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	UserName        string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail       string `json:"user_email" validate:"required,email"`
	UserPassword    string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole        string `json:"user_role" validate:"omitempty,oneof=student organizer"`
	UserInstitution string `json:"user_institution" validate:"omitempty,max=120"`
}

// Identifier accepts either the email or the user name.
type LoginRequest struct {
	Identifier   string `json:"identifier" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthResponse is the payload of register, login and refresh. The refresh
// token itself only travels in the HttpOnly cookie.
type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	User        *userdto.UserResponse `json:"user"`
}
