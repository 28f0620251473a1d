package models

import "errors"

// Sentinel errors services return and controllers translate to HTTP statuses.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrInvalidTransition = errors.New("request already resolved")
)
