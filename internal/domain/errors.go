package domain

import "errors"

// Sentinel errors shared by the reservation core and its transports.
// Callers compare with errors.Is; every layer wraps with %w.
var (
	// ErrValidation marks caller bugs: blank, nil or negative arguments.
	ErrValidation = errors.New("validation error")
	// ErrSeatNotFound is returned for malformed seat codes and out-of-range coordinates.
	ErrSeatNotFound = errors.New("seat not found")
	// ErrSeatAlreadyReserved is the expected outcome of a lost race or a double booking.
	ErrSeatAlreadyReserved = errors.New("seat already reserved")
	// ErrReservationNotFound is returned when a cancel or lookup target is absent.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrInvalidSeatState signals an illegal ledger transition. It should never reach
	// a caller while the coordinator's critical section is intact.
	ErrInvalidSeatState = errors.New("invalid seat state")
	ErrFlightNotFound   = errors.New("flight not found")
	// ErrIOFailure wraps durability failures. They are logged, never rolled back.
	ErrIOFailure = errors.New("io failure")
)
