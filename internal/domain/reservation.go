package domain

import (
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

type Passenger struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Contact  string `json:"contact"`
	Passport string `json:"passport"`
}

func (p Passenger) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

type Baggage struct {
	WeightKg float64 `json:"weight_kg"`
}

// Reservation is created only by the coordinator's booking operation and
// deactivated only by its cancellation operation. CANCELLED is terminal.
type Reservation struct {
	Code      string
	Flight    *Flight
	Passenger Passenger
	Seat      *Seat
	CreatedAt time.Time
	Status    ReservationStatus
}

func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusActive
}

type Ticket struct {
	ID               string
	ReservationCode  string
	Reservation      *Reservation
	Price            float64
	BaggageAllowance float64
	Baggage          *Baggage
}

func (t *Ticket) BaggageWeight() float64 {
	if t.Baggage == nil {
		return 0
	}
	return t.Baggage.WeightKg
}
