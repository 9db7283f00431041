package auth

import (
	"strings"
	"unicode"

	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

// passwordSpecialSet lists the characters that count as symbols.
const passwordSpecialSet = "!@#$%^&*()_+-=[]{}|;:'\",.<>/?~`"

// ValidatePasswordStrength enforces the registration password policy:
// at least 8 characters with at least one lowercase letter, one
// uppercase letter, one digit and one symbol from the special set.
func ValidatePasswordStrength(password string) error {
	if len(password) < PasswordMinLength {
		return apperrors.NewWeakPassword("password must be at least 8 characters")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialSet, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return apperrors.NewWeakPassword("password must contain a lowercase letter")
	case !hasUpper:
		return apperrors.NewWeakPassword("password must contain an uppercase letter")
	case !hasDigit:
		return apperrors.NewWeakPassword("password must contain a digit")
	case !hasSpecial:
		return apperrors.NewWeakPassword("password must contain a special character")
	}
	return nil
}
