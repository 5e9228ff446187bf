package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
)

// UserModel represents the users table. Accounts are never hard-deleted;
// deactivation flips user_is_active instead.
type UserModel struct {
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName        string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail       string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword    string    `gorm:"column:user_password;size:255" json:"-"` // empty for OAuth-only accounts
	UserInstitution string    `gorm:"column:user_institution;size:120" json:"user_institution"`
	UserRole        string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role" validate:"omitempty,oneof=student organizer admin"`

	// External identity providers (nullable, unique when present)
	UserGoogleID *string `gorm:"column:user_google_id;size:255;uniqueIndex" json:"-"`
	UserGitHubID *string `gorm:"column:user_github_id;size:255;uniqueIndex" json:"-"`

	// OAuth sign-ups pick role + institution in a follow-up complete-profile step.
	UserProfileCompleted bool `gorm:"column:user_profile_completed;not null;default:false" json:"user_profile_completed"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	if u.UserRole == "" {
		u.UserRole = constants.RoleStudent
	}
	return nil
}
