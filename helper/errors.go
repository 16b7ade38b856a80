package helper

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; none of them is fatal
// and a failed operation leaves the store untouched.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrLayoutNotFound    = errors.New("room layout not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatOccupied      = errors.New("seat already occupied by another guest")
	ErrAlreadyCheckedIn  = errors.New("guest already checked in")
	ErrNotCheckedIn      = errors.New("guest has not checked in")
	ErrInvalidTransition = errors.New("transition not allowed")
)
