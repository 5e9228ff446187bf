package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/constants"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID      = "user_id"
	LocUserName    = "user_name"
	LocUserRole    = "user_role"
	LocInstitution = "user_institution"
)

// GetUserIDFromToken returns the authenticated caller's id from Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user id in token")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserName).(string); ok {
		return v
	}
	return ""
}

func GetUserRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}

func GetInstitutionFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocInstitution).(string); ok {
		return v
	}
	return ""
}

// CanManage is the single ownership policy: a resource may be mutated by its
// owner or by an admin. Every update/delete handler goes through this.
func CanManage(c *fiber.Ctx, ownerID uuid.UUID) bool {
	if GetUserRoleFromToken(c) == constants.RoleAdmin {
		return true
	}
	callerID, err := GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return callerID == ownerID
}
