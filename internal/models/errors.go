package models

import (
	"errors"
)

// Service-level failures. Handlers map these to HTTP statuses.
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrParticipationNotFound = errors.New("participation not found")
	ErrUsernameTaken         = errors.New("username is already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")
)
