package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user registers with an email already in use
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrCapacityExhausted is returned when no bed of the requested type is available
	ErrCapacityExhausted = errors.New("no beds available of that type")

	// ErrInvalidDoctor is returned when the chosen doctor does not exist or works elsewhere
	ErrInvalidDoctor = errors.New("invalid doctor")

	// ErrDoctorUnavailable is returned when the chosen doctor has no free slot
	ErrDoctorUnavailable = errors.New("doctor unavailable")
)
