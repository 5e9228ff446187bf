package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/user/dto"
	"campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users/profile
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile fetched", dto.ToUserResponse(&user))
}

// PATCH /api/users/complete-profile
// OAuth sign-ups land without a role or institution; this endpoint fills
// them in exactly once. Admin cannot be self-assigned here.
func (uc *UserController) CompleteProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var input dto.CompleteProfileRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	updates := map[string]any{
		"user_role":              input.UserRole,
		"user_institution":       strings.TrimSpace(input.UserInstitution),
		"user_profile_completed": true,
	}
	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	user.UserRole = input.UserRole
	user.UserInstitution = strings.TrimSpace(input.UserInstitution)
	user.UserProfileCompleted = true

	return helper.JsonUpdated(c, "Profile completed", dto.ToUserResponse(&user))
}
