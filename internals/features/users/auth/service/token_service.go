package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
	authRepo "campushub_backend/internals/features/users/auth/repository"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// ========================== CLAIMS ==========================

func buildAccessClaims(user *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":         "access",
		"sub":         user.UserID.String(),
		"id":          user.UserID.String(),
		"user_name":   user.UserName,
		"role":        user.UserRole,
		"institution": user.UserInstitution,
		"iat":         now.Unix(),
		"exp":         now.Add(accessTokenTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
}

// computeRefreshHash keys the HMAC with the refresh secret so a leaked
// database dump cannot be replayed as cookies.
func computeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// ========================== ISSUE ==========================

// IssueTokens signs a new access/refresh pair, persists the refresh hash and
// sets both cookies. The access token is also returned for the JSON body.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", errors.New("jwt secrets are not configured")
	}
	now := time.Now()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UserID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      computeRefreshHash(refreshToken),
		RefreshTokenExpiresAt: now.Add(refreshTokenTTL),
		RefreshTokenUserAgent: strptr(c.Get("User-Agent")),
		RefreshTokenIP:        strptr(c.IP()),
	}); err != nil {
		return "", err
	}

	setAuthCookies(c, accessToken, refreshToken, now)
	return accessToken, nil
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/api/auth"})
}

// ========================== REFRESH ==========================

// RefreshToken rotates the refresh cookie: the presented token is validated
// against its stored hash, revoked, and replaced by a fresh pair.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	stored, err := authRepo.FindActiveRefreshTokenByHash(db, computeRefreshHash(refreshCookie))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	// Rotation: the old token must never be usable twice.
	if err := authRepo.RevokeRefreshToken(db, stored.RefreshTokenID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{"access_token": accessToken})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
