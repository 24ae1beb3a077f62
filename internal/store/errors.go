package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound means a referenced user id does not exist.
	ErrUserNotFound = errors.New("unknown userId")

	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError reports the first missing or malformed field of a request.
// The message format matches what clients of the original service expect.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Path `%s` is required.", e.Field)
}
