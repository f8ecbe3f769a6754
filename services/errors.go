package services

import "errors"

var (
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already on waitlist")
	ErrSlugExhausted  = errors.New("failed to generate unique slug")
)
