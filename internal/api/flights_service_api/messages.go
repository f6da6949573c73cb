package flights_service_api

type Empty struct{}

type Flight struct {
	Number           string  `json:"number"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	PlaneModel       string  `json:"plane_model"`
	Capacity         int32   `json:"capacity"`
	AvailableSeats   int32   `json:"available_seats"`
	EconomyBasePrice float64 `json:"economy_base_price"`
}

type ListFlightsResponse struct {
	Flights []*Flight `json:"flights"`
}

// SearchFlightsRequest looks up a route. Now is RFC 3339; empty means the
// server's current time.
type SearchFlightsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Now  string `json:"now,omitempty"`
}

type GetFlightRequest struct {
	Number string `json:"number"`
}

type GetFlightResponse struct {
	Flight *Flight `json:"flight"`
}

type Seat struct {
	Code     string  `json:"code"`
	Row      int32   `json:"row"`
	Column   int32   `json:"column"`
	Class    string  `json:"class"`
	Price    float64 `json:"price"`
	Reserved bool    `json:"reserved"`
}

type SeatMapResponse struct {
	Number string  `json:"number"`
	Seats  []*Seat `json:"seats"`
}
