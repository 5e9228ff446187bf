package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

// AuthJWT verifies the access token and hydrates Locals with the caller's
// identity. Accepted sources: Authorization: Bearer <token>, falling back to
// the access_token cookie (the cookie is set at login).
func AuthJWT(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing token")
		}

		// Revoked tokens are rejected even before signature checks.
		var black authModel.TokenBlacklistModel
		if err := db.Where("token_blacklist_token = ?", raw).First(&black).Error; err == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		secret := strings.TrimSpace(configs.JWTSecret)
		if secret == "" {
			secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
		}
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}
		if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not an access token")
		}

		userID := strClaim(claims, "id")
		if userID == "" {
			userID = strClaim(claims, "sub")
		}
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing user id in token")
		}

		c.Locals(helperAuth.LocUserID, userID)
		c.Locals(helperAuth.LocUserName, strClaim(claims, "user_name"))
		c.Locals(helperAuth.LocUserRole, strClaim(claims, "role"))
		c.Locals(helperAuth.LocInstitution, strClaim(claims, "institution"))
		helper.SetRawAccessToken(c, raw)

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
