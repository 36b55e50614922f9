package store

import "errors"

// Sentinel errors returned by Store implementations.
// Services translate these into domain errors at their boundary.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
	ErrCafeNotFound = errors.New("cafe not found")
	ErrTagNotFound  = errors.New("tag not found")
)
