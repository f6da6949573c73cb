package report

import (
	"context"
	"math"

	"github.com/Domenick1991/airseats/internal/domain"
)

type ReportUseCase interface {
	Occupancy(ctx context.Context) (*OccupancyReport, error)
}

type FleetSource interface {
	Flights() []*domain.Flight
}

type ReservationSource interface {
	Reservations() []domain.Reservation
	Tickets() []domain.Ticket
}

type FlightOccupancy struct {
	FlightNumber string  `json:"flight_number"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	PlaneModel   string  `json:"plane_model"`
	Capacity     int     `json:"capacity"`
	Reserved     int     `json:"reserved"`
	Free         int     `json:"free"`
	Percent      float64 `json:"percent"`
	Revenue      float64 `json:"revenue"`
}

type OccupancyReport struct {
	Flights       []FlightOccupancy `json:"flights"`
	TotalCapacity int               `json:"total_capacity"`
	TotalReserved int               `json:"total_reserved"`
	Percent       float64           `json:"percent"`
	Revenue       float64           `json:"revenue"`
}

type ReportService struct {
	fleet    FleetSource
	bookings ReservationSource
}

func NewReportService(fleet FleetSource, bookings ReservationSource) *ReportService {
	return &ReportService{fleet: fleet, bookings: bookings}
}

// Occupancy counts active reservations against capacity for every flight.
func (s *ReportService) Occupancy(_ context.Context) (*OccupancyReport, error) {
	reserved := make(map[string]int)
	for _, r := range s.bookings.Reservations() {
		if r.IsActive() && r.Flight != nil {
			reserved[r.Flight.Number]++
		}
	}
	revenue := make(map[string]float64)
	for _, t := range s.bookings.Tickets() {
		if t.Reservation != nil && t.Reservation.Flight != nil {
			revenue[t.Reservation.Flight.Number] += t.Price
		}
	}

	report := &OccupancyReport{Flights: make([]FlightOccupancy, 0)}
	for _, f := range s.fleet.Flights() {
		row := FlightOccupancy{
			FlightNumber: f.Number,
			From:         f.From,
			To:           f.To,
			Reserved:     reserved[f.Number],
			Revenue:      revenue[f.Number],
		}
		if f.Plane != nil {
			row.PlaneModel = f.Plane.Model
			row.Capacity = f.Plane.Capacity()
		}
		row.Free = row.Capacity - row.Reserved
		row.Percent = percent(row.Reserved, row.Capacity)

		report.Flights = append(report.Flights, row)
		report.TotalCapacity += row.Capacity
		report.TotalReserved += row.Reserved
		report.Revenue += row.Revenue
	}
	report.Percent = percent(report.TotalReserved, report.TotalCapacity)
	return report, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}

var _ ReportUseCase = (*ReportService)(nil)
