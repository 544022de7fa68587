package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
)

// ValidatePassword: 4-16 karakter, minimal satu huruf kecil dan satu angka.
func ValidatePassword(password, confirm string) error {
	length := utf8.RuneCountInString(password)
	if length < 4 || length > 16 {
		return apperror.Validation("password must be 4 to 16 characters")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) || !strings.ContainsFunc(password, unicode.IsDigit) {
		return apperror.Validation("password must contain at least one lowercase letter and one digit")
	}
	if password != confirm {
		return apperror.Validation("password confirmation does not match")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
