package domain

import "time"

// ReservationRecord is the flat durable form of a reservation and its ticket.
// Cancelled reservations are stored with Active=false and no ticket fields.
type ReservationRecord struct {
	Code             string    `yaml:"code" json:"code"`
	TicketID         string    `yaml:"ticket_id,omitempty" json:"ticket_id,omitempty"`
	FlightNumber     string    `yaml:"flight_number" json:"flight_number"`
	PassengerID      string    `yaml:"passenger_id" json:"passenger_id"`
	PassengerName    string    `yaml:"passenger_name" json:"passenger_name"`
	PassengerSurname string    `yaml:"passenger_surname" json:"passenger_surname"`
	Contact          string    `yaml:"contact" json:"contact"`
	Passport         string    `yaml:"passport" json:"passport"`
	SeatCode         string    `yaml:"seat_code" json:"seat_code"`
	Price            float64   `yaml:"price" json:"price"`
	BaggageAllowance float64   `yaml:"baggage_allowance" json:"baggage_allowance"`
	BaggageWeight    float64   `yaml:"baggage_weight" json:"baggage_weight"`
	Active           bool      `yaml:"active" json:"active"`
	CreatedAt        time.Time `yaml:"created_at" json:"created_at"`
}

// ToRecords flattens reservations with their tickets. Reservations are emitted in
// the given order; a reservation without a ticket keeps zero ticket fields.
func ToRecords(reservations []Reservation, tickets []Ticket) []ReservationRecord {
	byCode := make(map[string]Ticket, len(tickets))
	for _, t := range tickets {
		byCode[t.ReservationCode] = t
	}

	records := make([]ReservationRecord, 0, len(reservations))
	for _, r := range reservations {
		rec := ReservationRecord{
			Code:             r.Code,
			PassengerID:      r.Passenger.ID,
			PassengerName:    r.Passenger.Name,
			PassengerSurname: r.Passenger.Surname,
			Contact:          r.Passenger.Contact,
			Passport:         r.Passenger.Passport,
			Active:           r.IsActive(),
			CreatedAt:        r.CreatedAt,
		}
		if r.Flight != nil {
			rec.FlightNumber = r.Flight.Number
		}
		if r.Seat != nil {
			rec.SeatCode = r.Seat.Code
		}
		if t, ok := byCode[r.Code]; ok {
			rec.TicketID = t.ID
			rec.Price = t.Price
			rec.BaggageAllowance = t.BaggageAllowance
			rec.BaggageWeight = t.BaggageWeight()
		}
		records = append(records, rec)
	}
	return records
}

// FlightRecord is the durable form of a flight and the plane that operates it.
type FlightRecord struct {
	Number           string    `yaml:"number" json:"number"`
	From             string    `yaml:"from" json:"from"`
	To               string    `yaml:"to" json:"to"`
	DepartureTime    time.Time `yaml:"departure_time" json:"departure_time"`
	DurationMinutes  int       `yaml:"duration_minutes" json:"duration_minutes"`
	EconomyBasePrice float64   `yaml:"economy_base_price" json:"economy_base_price"`
	PlaneID          string    `yaml:"plane_id" json:"plane_id"`
	PlaneModel       string    `yaml:"plane_model" json:"plane_model"`
	Rows             int       `yaml:"rows" json:"rows"`
	Columns          int       `yaml:"columns" json:"columns"`
	BusinessRows     int       `yaml:"business_rows" json:"business_rows"`
}
