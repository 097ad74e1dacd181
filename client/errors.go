package client

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means the session holds no usable credentials. The
// caller has to log in again.
var ErrUnauthenticated = errors.New("not authenticated")

// APIError is a non-2xx server response that is not an authentication
// failure handled by the session itself.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}
