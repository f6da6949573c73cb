package kafka

import "time"

const (
	EventReservationCreated   = "reservation_created"
	EventReservationCancelled = "reservation_cancelled"
)

type ReservationEvent struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	ReservationCode string    `json:"reservation_code"`
	TicketID        string    `json:"ticket_id,omitempty"`
	FlightNumber    string    `json:"flight_number"`
	SeatCode        string    `json:"seat_code"`
	PassengerID     string    `json:"passenger_id"`
	PassengerName   string    `json:"passenger_name"`
	Contact         string    `json:"contact"`
	Price           float64   `json:"price,omitempty"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}
