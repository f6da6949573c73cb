package domain

import "time"

type Flight struct {
	Number           string
	From             string
	To               string
	DepartureTime    time.Time
	DurationMinutes  int
	EconomyBasePrice float64
	Plane            *Plane
}

// FlightSummary is the cacheable listing view of a flight.
type FlightSummary struct {
	Number           string    `json:"number"`
	From             string    `json:"from"`
	To               string    `json:"to"`
	DepartureTime    time.Time `json:"departure_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	EconomyBasePrice float64   `json:"economy_base_price"`
	PlaneModel       string    `json:"plane_model"`
	Capacity         int       `json:"capacity"`
	AvailableSeats   int       `json:"available_seats"`
}
