package flights

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/repository"
	"github.com/Domenick1991/airseats/internal/service/seats"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightSummary, error)
	GetByNumber(ctx context.Context, number string) (*domain.FlightSummary, error)
	SeatMap(ctx context.Context, number string) ([]domain.SeatView, error)
	Search(ctx context.Context, from, to string, now time.Time) ([]domain.FlightSummary, error)
	Upcoming(ctx context.Context, now time.Time) ([]domain.FlightSummary, error)
}

// FlightCache stores entries under a generation. Invalidation bumps the
// generation, so a fill computed before a commit lands under a stale key and
// is never read.
type FlightCache interface {
	Generation(ctx context.Context) (int64, error)
	GetFlights(ctx context.Context, gen int64) ([]domain.FlightSummary, error)
	SetFlights(ctx context.Context, gen int64, flights []domain.FlightSummary) error
	GetSeatMap(ctx context.Context, gen int64, flightNumber string) ([]domain.SeatView, error)
	SetSeatMap(ctx context.Context, gen int64, flightNumber string, seats []domain.SeatView) error
}

// FlightService holds the in-memory fleet. Flights are loaded once at start-up;
// seat state on their planes is owned by the booking service.
type FlightService struct {
	repo               repository.FlightRepository
	cache              FlightCache
	businessMultiplier float64

	mu      sync.RWMutex
	flights map[string]*domain.Flight
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, businessMultiplier float64) *FlightService {
	return &FlightService{
		repo:               repo,
		cache:              cache,
		businessMultiplier: businessMultiplier,
		flights:            make(map[string]*domain.Flight),
	}
}

// Load reads the fleet from the repository and builds a populated plane for
// every flight.
func (s *FlightService) Load(ctx context.Context) error {
	records, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list flights: %w", err)
	}

	for _, rec := range records {
		flight, err := s.build(rec)
		if err != nil {
			return fmt.Errorf("build flight %s: %w", rec.Number, err)
		}
		if err := s.Register(flight); err != nil {
			return err
		}
	}
	log.Printf("loaded %d flights", len(records))
	return nil
}

func (s *FlightService) build(rec domain.FlightRecord) (*domain.Flight, error) {
	plane, err := domain.NewPlane(rec.PlaneID, rec.PlaneModel, rec.Rows, rec.Columns)
	if err != nil {
		return nil, err
	}
	if err := seats.Populate(plane, rec.BusinessRows, rec.EconomyBasePrice, s.businessMultiplier); err != nil {
		return nil, err
	}
	return &domain.Flight{
		Number:           rec.Number,
		From:             rec.From,
		To:               rec.To,
		DepartureTime:    rec.DepartureTime,
		DurationMinutes:  rec.DurationMinutes,
		EconomyBasePrice: rec.EconomyBasePrice,
		Plane:            plane,
	}, nil
}

func (s *FlightService) Register(flight *domain.Flight) error {
	if flight == nil || flight.Plane == nil {
		return fmt.Errorf("%w: flight and plane are required", domain.ErrValidation)
	}
	if strings.TrimSpace(flight.Number) == "" {
		return fmt.Errorf("%w: flight number is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.flights[flight.Number]; exists {
		return fmt.Errorf("%w: flight %s already registered", domain.ErrValidation, flight.Number)
	}
	s.flights[flight.Number] = flight
	return nil
}

func (s *FlightService) Resolve(_ context.Context, number string) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight, ok := s.flights[strings.TrimSpace(number)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, number)
	}
	return flight, nil
}

// Flights returns the fleet ordered by departure time, then number.
func (s *FlightService) Flights() []*domain.Flight {
	s.mu.RLock()
	out := make([]*domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		out = append(out, f)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Flight) int {
		if c := a.DepartureTime.Compare(b.DepartureTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return out
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	gen, cached := s.generation(ctx)
	if cached {
		if flights, err := s.cache.GetFlights(ctx, gen); err == nil && flights != nil {
			return flights, nil
		}
	}

	summaries := summarizeAll(s.Flights())
	if cached {
		if err := s.cache.SetFlights(ctx, gen, summaries); err != nil {
			log.Printf("WARNING: failed to cache flights: %v", err)
		}
	}
	return summaries, nil
}

// Search returns flights between two airports that have not departed at now.
// Airports match case-insensitively; a zero now means the current time.
func (s *FlightService) Search(_ context.Context, from, to string, now time.Time) ([]domain.FlightSummary, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: departure and arrival airports are required", domain.ErrValidation)
	}
	if now.IsZero() {
		now = time.Now()
	}

	var matched []*domain.Flight
	for _, f := range s.Flights() {
		if strings.EqualFold(f.From, from) && strings.EqualFold(f.To, to) && !f.DepartureTime.Before(now) {
			matched = append(matched, f)
		}
	}
	return summarizeAll(matched), nil
}

// Upcoming returns every flight that has not departed at now.
func (s *FlightService) Upcoming(_ context.Context, now time.Time) ([]domain.FlightSummary, error) {
	if now.IsZero() {
		now = time.Now()
	}

	var upcoming []*domain.Flight
	for _, f := range s.Flights() {
		if !f.DepartureTime.Before(now) {
			upcoming = append(upcoming, f)
		}
	}
	return summarizeAll(upcoming), nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.FlightSummary, error) {
	flight, err := s.Resolve(ctx, number)
	if err != nil {
		return nil, err
	}
	summary := Summarize(flight)
	return &summary, nil
}

func (s *FlightService) SeatMap(ctx context.Context, number string) ([]domain.SeatView, error) {
	flight, err := s.Resolve(ctx, number)
	if err != nil {
		return nil, err
	}

	gen, cached := s.generation(ctx)
	if cached {
		if seatMap, err := s.cache.GetSeatMap(ctx, gen, flight.Number); err == nil && seatMap != nil {
			return seatMap, nil
		}
	}

	seatMap := seats.SeatMap(flight.Plane)
	if cached {
		if err := s.cache.SetSeatMap(ctx, gen, flight.Number, seatMap); err != nil {
			log.Printf("WARNING: failed to cache seat map for %s: %v", flight.Number, err)
		}
	}
	return seatMap, nil
}

// generation reads the cache generation before any state is computed. The
// cache is bypassed when it is not configured or unreachable.
func (s *FlightService) generation(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		log.Printf("WARNING: failed to read cache generation: %v", err)
		return 0, false
	}
	return gen, true
}

func summarizeAll(fleet []*domain.Flight) []domain.FlightSummary {
	summaries := make([]domain.FlightSummary, 0, len(fleet))
	for _, f := range fleet {
		summaries = append(summaries, Summarize(f))
	}
	return summaries
}

func Summarize(flight *domain.Flight) domain.FlightSummary {
	summary := domain.FlightSummary{
		Number:           flight.Number,
		From:             flight.From,
		To:               flight.To,
		DepartureTime:    flight.DepartureTime,
		DurationMinutes:  flight.DurationMinutes,
		EconomyBasePrice: flight.EconomyBasePrice,
	}
	if flight.Plane != nil {
		summary.PlaneModel = flight.Plane.Model
		summary.Capacity = flight.Plane.Capacity()
		summary.AvailableSeats = seats.AvailableCount(flight.Plane)
	}
	return summary
}

var _ FlightUseCase = (*FlightService)(nil)
