package users

import "errors"

var (
	// ErrInvalidCredentials means the username/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken means the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound means no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrRefreshInvalid means the refresh credential is missing, unknown or
	// expired; the session cannot be restored.
	ErrRefreshInvalid = errors.New("invalid refresh token")
)

// ValidationError reports a rejected registration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
