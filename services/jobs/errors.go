package jobs

import "errors"

var (
	// ErrJobNotFound means no job matches the lookup.
	ErrJobNotFound = errors.New("job not found")
	// ErrAlreadyAssigned means the job already left pending; a concurrent
	// assignment won.
	ErrAlreadyAssigned = errors.New("job already assigned")
	// ErrAssignConflict means the job is not in a state that accepts
	// assignment (cancelled, completed, in progress).
	ErrAssignConflict = errors.New("job cannot be assigned in its current state")
	// ErrIllegalTransition means the requested status edge is not part of
	// the lifecycle, or the job moved since the caller last saw it.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrForbidden means the caller's role or identity does not allow the
	// operation on this job.
	ErrForbidden = errors.New("operation not allowed for caller")
	// ErrDriverNotFound means the driver being assigned does not resolve in
	// the roster.
	ErrDriverNotFound = errors.New("driver not found")
	// ErrTruckNotFound means the truck being assigned does not exist.
	ErrTruckNotFound = errors.New("truck not found")
)

// ValidationError reports a rejected job form field.
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
