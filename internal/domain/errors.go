package domain

import "errors"

var (
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrSlotNotFound        = errors.New("time slot not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAccountNotFound     = errors.New("account not found")
)

var (
	ErrAlreadyBooked      = errors.New("time slot is already booked")
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrInvalidReservation = errors.New("reservation is not active")
	ErrTooLateToCancel    = errors.New("too late to cancel reservation")
	ErrOverlap            = errors.New("time slot overlaps an existing slot")
	ErrCapacity           = errors.New("experience slot capacity exhausted")
	ErrSlotExists         = errors.New("a slot already exists at this start time")
	ErrExperienceExists   = errors.New("experience already exists for this organiser and title")
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthorized      = errors.New("caller is not authorized")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
