package identity

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingField       = errors.New("all fields are required")
	ErrInvalidRole        = errors.New("role must be patient or caretaker")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
