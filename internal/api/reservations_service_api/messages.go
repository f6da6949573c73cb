package reservations_service_api

type Passenger struct {
	Id       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Passport string `json:"passport,omitempty"`
}

type BookRequest struct {
	FlightNumber string    `json:"flight_number"`
	SeatCode     string    `json:"seat_code"`
	Passenger    Passenger `json:"passenger"`
	BaggageKg    *float64  `json:"baggage_kg,omitempty"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type Reservation struct {
	Code          string `json:"code"`
	Status        string `json:"status"`
	FlightNumber  string `json:"flight_number"`
	SeatCode      string `json:"seat_code"`
	SeatClass     string `json:"seat_class"`
	PassengerId   string `json:"passenger_id"`
	PassengerName string `json:"passenger_name"`
	CreatedAt     string `json:"created_at"`
}

type Ticket struct {
	TicketId           string       `json:"ticket_id"`
	Price              float64      `json:"price"`
	BaggageAllowanceKg float64      `json:"baggage_allowance_kg"`
	BaggageKg          float64      `json:"baggage_kg"`
	Reservation        *Reservation `json:"reservation"`
}
