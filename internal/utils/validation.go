package utils

import (
	"regexp"
	"strings"
)

var (
	// phoneRegex accepts digits plus the usual separators, 7-15 chars.
	phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)
	// emailRegex is deliberately loose: something@something.something.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidPhone checks whether a string looks like a phone number.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidEmail checks whether a string looks like an email address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// MinLen reports whether the trimmed value is at least n characters.
func MinLen(value string, n int) bool {
	return len(strings.TrimSpace(value)) >= n
}

// IsStrongPassword enforces the registration password policy: at least 8
// characters with lowercase, uppercase, a digit and one of @$!%*?&.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
