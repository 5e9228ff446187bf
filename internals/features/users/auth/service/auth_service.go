package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	authDTO "campushub_backend/internals/features/users/auth/dto"
	authHelper "campushub_backend/internals/features/users/auth/helper"
	authRepo "campushub_backend/internals/features/users/auth/repository"
	userDTO "campushub_backend/internals/features/users/user/dto"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authHelper.ValidatePasswordInput(input.UserPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(input.UserEmail))
	if _, err := authRepo.FindUserByEmail(db, email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	hashed, err := authHelper.HashPassword(input.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	role := input.UserRole
	if role == "" {
		role = constants.RoleStudent
	}
	user := &userModel.UserModel{
		UserName:             strings.TrimSpace(input.UserName),
		UserEmail:            email,
		UserPassword:         hashed,
		UserRole:             role,
		UserInstitution:      strings.TrimSpace(input.UserInstitution),
		UserProfileCompleted: input.UserInstitution != "",
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	log.Printf("[INFO] user registered: %s", user.UserEmail)

	return helper.JsonCreated(c, "Registration successful", authDTO.AuthResponse{
		AccessToken: accessToken,
		User:        userDTO.ToUserResponse(user),
	})
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrName(db, strings.TrimSpace(input.Identifier))
	if err != nil {
		// Same message as a wrong password so the endpoint does not leak
		// which accounts exist.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if user.UserPassword == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "This account uses social sign-in")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.UserPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
		AccessToken: accessToken,
		User:        userDTO.ToUserResponse(user),
	})
}

// ========================== GOOGLE LOGIN ==========================
// POST /api/auth/google with the ID token obtained by the frontend.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.ValidateStruct(&input); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Link by email when the account already exists, otherwise sign up.
		user, err = authRepo.FindUserByEmail(db, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &userModel.UserModel{
				UserName:     name,
				UserEmail:    email,
				UserGoogleID: &googleID,
			}
			if err := authRepo.CreateUser(db, user); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
			}
		} else if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		} else {
			user.UserGoogleID = &googleID
			if err := db.Model(user).Update("user_google_id", googleID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link Google account")
			}
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
		AccessToken: accessToken,
		User:        userDTO.ToUserResponse(user),
	})
}

// ========================== LOGOUT ==========================
// Blacklists the current access token until its natural expiry and revokes
// every active refresh token of the user.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		expiredAt := time.Now().Add(accessTokenTTL)
		if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					expiredAt = time.Unix(int64(exp), 0)
				}
			}
		}
		if err := authRepo.BlacklistToken(db, raw, expiredAt); err != nil {
			log.Printf("[ERROR] failed to blacklist token: %v", err)
		}
	}

	if userID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		if err := authRepo.RevokeAllRefreshTokensForUser(db, userID); err != nil {
			log.Printf("[ERROR] failed to revoke refresh tokens: %v", err)
		}
	}

	ClearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", nil)
}
