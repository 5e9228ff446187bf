package constants

import "fmt"

// Role enum — one user has exactly one role.
const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// Role error message templates
const (
	ErrOnlyStudentsCanAccess   = "Only students may access the %s feature."
	ErrOnlyOrganizersCanAccess = "Only organizers or admins may access the %s feature."
	ErrOnlyAdminsCanAccess     = "Only admins may access the %s feature."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorOrganizer(feature string) string {
	return fmt.Sprintf(ErrOnlyOrganizersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleOrganizer,
		RoleAdmin,
	}

	// Roles allowed to create and manage events.
	EventManagerRoles = []string{
		RoleOrganizer,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
