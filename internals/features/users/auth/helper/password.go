package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePasswordInput runs the checks bcrypt itself will not: bcrypt
// silently truncates input at 72 bytes.
func ValidatePasswordInput(password string) error {
	trimmed := strings.TrimSpace(password)
	if len(trimmed) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(trimmed) > 72 {
		return errors.New("password must be at most 72 characters")
	}
	return nil
}
