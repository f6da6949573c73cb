package booking

import (
	"fmt"

	"github.com/Domenick1991/airseats/internal/domain"
)

// ClaimStatus is the outcome of a seat claim on the contention hot path.
// Losing a race is an ordinary outcome, not an error.
type ClaimStatus int

const (
	ClaimClaimed ClaimStatus = iota + 1
	ClaimAlreadyReserved
	ClaimSeatNotFound
)

func (s ClaimStatus) String() string {
	switch s {
	case ClaimClaimed:
		return "claimed"
	case ClaimAlreadyReserved:
		return "already_reserved"
	case ClaimSeatNotFound:
		return "seat_not_found"
	default:
		return fmt.Sprintf("ClaimStatus(%d)", int(s))
	}
}

type Claim struct {
	Status   ClaimStatus
	SeatCode string
	// Ticket is set only when Status is ClaimClaimed.
	Ticket *domain.Ticket
}

// Err converts a losing outcome into its sentinel error.
func (c Claim) Err() error {
	switch c.Status {
	case ClaimClaimed:
		return nil
	case ClaimAlreadyReserved:
		return fmt.Errorf("%w: %s", domain.ErrSeatAlreadyReserved, c.SeatCode)
	case ClaimSeatNotFound:
		return fmt.Errorf("%w: %s", domain.ErrSeatNotFound, c.SeatCode)
	default:
		return fmt.Errorf("unknown claim status %v", c.Status)
	}
}

// ReservationCode derives the reservation code from flight, passenger and seat.
// The same triple always yields the same code, so a passenger can never hold two
// simultaneous reservations for one flight+seat.
func ReservationCode(flightNumber, passengerID, seatCode string) string {
	return flightNumber + "-" + passengerID + "-" + seatCode
}

func TicketID(reservationCode string) string {
	return "T-" + reservationCode
}
