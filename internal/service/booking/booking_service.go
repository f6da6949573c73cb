package booking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/kafka"
	"github.com/Domenick1991/airseats/internal/service/seats"
	"github.com/google/uuid"
)

const DefaultBaggageAllowanceKg = 15.0

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Ticket, error)
	Cancel(ctx context.Context, code string) (*domain.Reservation, error)
	FindByCode(ctx context.Context, code string) (*domain.Reservation, error)
	FindTicketByCode(ctx context.Context, code string) (*domain.Ticket, error)
}

type FlightResolver interface {
	Resolve(ctx context.Context, flightNumber string) (*domain.Flight, error)
}

type PriceQuoter interface {
	Quote(ctx context.Context, flight *domain.Flight, seat *domain.Seat, baggageAllowance float64, baggage *domain.Baggage) (float64, error)
}

// Persister is the durability callback. It receives the working set plus the
// cancelled history after every committed booking or cancellation.
type Persister interface {
	SaveAll(ctx context.Context, reservations []domain.Reservation, tickets []domain.Ticket) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type BookInput struct {
	FlightNumber string           `json:"flight_number"`
	Passenger    domain.Passenger `json:"passenger"`
	SeatCode     string           `json:"seat_code"`
	Baggage      *domain.Baggage  `json:"baggage,omitempty"`
}

func (in BookInput) validate() error {
	if strings.TrimSpace(in.FlightNumber) == "" {
		return fmt.Errorf("%w: flight number is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Passenger.ID) == "" {
		return fmt.Errorf("%w: passenger id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.SeatCode) == "" {
		return fmt.Errorf("%w: seat code is required", domain.ErrValidation)
	}
	if in.Baggage != nil && in.Baggage.WeightKg < 0 {
		return fmt.Errorf("%w: baggage weight cannot be negative", domain.ErrValidation)
	}
	return nil
}

// BookingService is the reservation coordinator. One mutex serializes every
// booking and cancellation across all flights and seats, so a check-then-claim
// on a seat is indivisible. Nothing outside this type marks seats.
type BookingService struct {
	flights FlightResolver
	quoter  PriceQuoter

	persister          Persister
	producer           Producer
	cache              Cache
	reservationTopic   string
	notificationsTopic string
	baggageAllowance   float64
	now                func() time.Time

	mu        sync.Mutex
	active    map[string]*domain.Reservation
	tickets   map[string]*domain.Ticket
	cancelled map[string]*domain.Reservation
}

type BookingServiceOption func(*BookingService)

func WithPersister(p Persister) BookingServiceOption {
	return func(s *BookingService) {
		s.persister = p
	}
}

func WithProducer(p Producer, reservationTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
		s.reservationTopic = reservationTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithCache(c Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = c
	}
}

func WithBaggageAllowance(kg float64) BookingServiceOption {
	return func(s *BookingService) {
		s.baggageAllowance = kg
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(flights FlightResolver, quoter PriceQuoter, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		flights:          flights,
		quoter:           quoter,
		baggageAllowance: DefaultBaggageAllowanceKg,
		now:              time.Now,
		active:           make(map[string]*domain.Reservation),
		tickets:          make(map[string]*domain.Ticket),
		cancelled:        make(map[string]*domain.Reservation),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Claim attempts to reserve a seat and reports the outcome as a Claim. Errors are
// returned only for invalid input, unknown flights, quotation failures and
// ledger invariant violations.
func (s *BookingService) Claim(ctx context.Context, input BookInput) (Claim, error) {
	if err := input.validate(); err != nil {
		return Claim{}, err
	}
	if s.baggageAllowance < 0 {
		return Claim{}, fmt.Errorf("%w: baggage allowance cannot be negative", domain.ErrValidation)
	}

	flight, err := s.flights.Resolve(ctx, input.FlightNumber)
	if err != nil {
		return Claim{}, err
	}
	if flight == nil || flight.Plane == nil {
		return Claim{}, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, input.FlightNumber)
	}

	claim, err := s.claim(ctx, flight, input)
	if err != nil || claim.Status != ClaimClaimed {
		return claim, err
	}

	s.afterCommit(ctx, kafka.EventReservationCreated, claim.Ticket.Reservation, claim.Ticket)
	return claim, nil
}

func (s *BookingService) claim(ctx context.Context, flight *domain.Flight, input BookInput) (Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := seats.Resolve(flight.Plane, input.SeatCode)
	if !ok {
		return Claim{Status: ClaimSeatNotFound, SeatCode: input.SeatCode}, nil
	}
	if seat.IsReserved() {
		return Claim{Status: ClaimAlreadyReserved, SeatCode: seat.Code}, nil
	}
	if err := seat.MarkReserved(); err != nil {
		return Claim{}, err
	}

	ticket, err := s.issueLocked(ctx, flight, seat, input)
	if err != nil {
		if rbErr := seat.MarkUnreserved(); rbErr != nil {
			log.Printf("rollback of seat %s on flight %s failed: %v", seat.Code, flight.Number, rbErr)
			return Claim{}, errors.Join(err, rbErr)
		}
		return Claim{}, err
	}

	s.persistLocked(ctx)
	return Claim{Status: ClaimClaimed, SeatCode: seat.Code, Ticket: copyTicket(ticket)}, nil
}

// issueLocked creates the reservation and ticket for a seat that is already
// marked. The caller rolls the mark back on error.
func (s *BookingService) issueLocked(ctx context.Context, flight *domain.Flight, seat *domain.Seat, input BookInput) (*domain.Ticket, error) {
	code := ReservationCode(flight.Number, input.Passenger.ID, seat.Code)
	if _, exists := s.active[code]; exists {
		return nil, fmt.Errorf("%w: reservation %s is already active", domain.ErrInvalidSeatState, code)
	}

	price, err := s.quoter.Quote(ctx, flight, seat, s.baggageAllowance, input.Baggage)
	if err != nil {
		return nil, fmt.Errorf("quote price for %s: %w", code, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("quote price for %s: negative amount %.2f", code, price)
	}

	reservation := &domain.Reservation{
		Code:      code,
		Flight:    flight,
		Passenger: input.Passenger,
		Seat:      seat,
		CreatedAt: s.now(),
		Status:    domain.ReservationStatusActive,
	}
	ticket := &domain.Ticket{
		ID:               TicketID(code),
		ReservationCode:  code,
		Reservation:      reservation,
		Price:            price,
		BaggageAllowance: s.baggageAllowance,
		Baggage:          copyBaggage(input.Baggage),
	}

	s.active[code] = reservation
	s.tickets[code] = ticket
	delete(s.cancelled, code)
	return ticket, nil
}

func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Ticket, error) {
	claim, err := s.Claim(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := claim.Err(); err != nil {
		return nil, err
	}
	return claim.Ticket, nil
}

// Cancel frees the reservation's seat and drops it and its ticket from the
// working set. Cancelling an already-cancelled code is a no-op that returns
// the cancelled reservation; an unknown code is ErrReservationNotFound.
func (s *BookingService) Cancel(ctx context.Context, code string) (*domain.Reservation, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: reservation code is required", domain.ErrValidation)
	}

	cancelled, ticket, changed, err := s.cancel(ctx, code)
	if err != nil {
		return nil, err
	}
	if changed {
		s.afterCommit(ctx, kafka.EventReservationCancelled, cancelled, ticket)
	}
	return cancelled, nil
}

func (s *BookingService) cancel(ctx context.Context, code string) (*domain.Reservation, *domain.Ticket, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.active[code]
	if !ok {
		if prev, ok := s.cancelled[code]; ok {
			return copyReservation(prev), nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, code)
	}

	if err := reservation.Seat.MarkUnreserved(); err != nil {
		return nil, nil, false, err
	}
	reservation.Status = domain.ReservationStatusCancelled

	ticket := s.tickets[code]
	delete(s.active, code)
	delete(s.tickets, code)
	s.cancelled[code] = reservation

	s.persistLocked(ctx)

	var ticketCopy *domain.Ticket
	if ticket != nil {
		ticketCopy = copyTicket(ticket)
	}
	return copyReservation(reservation), ticketCopy, true, nil
}

func (s *BookingService) FindByCode(_ context.Context, code string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.active[strings.TrimSpace(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, code)
	}
	return copyReservation(reservation), nil
}

func (s *BookingService) FindTicketByCode(_ context.Context, code string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[strings.TrimSpace(code)]
	if !ok {
		return nil, fmt.Errorf("%w: ticket for %s", domain.ErrReservationNotFound, code)
	}
	return copyTicket(ticket), nil
}

// Reservations returns copies of the active working set ordered by creation.
func (s *BookingService) Reservations() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reservation, 0, len(s.active))
	for _, r := range sortedReservations(s.active) {
		out = append(out, *r)
	}
	return out
}

func (s *BookingService) Tickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, r := range sortedReservations(s.active) {
		if t, ok := s.tickets[r.Code]; ok {
			out = append(out, *copyTicket(t))
		}
	}
	return out
}

// persistLocked invokes the durability callback inside the critical section.
// Failures are logged and do not roll the commit back.
func (s *BookingService) persistLocked(ctx context.Context) {
	if s.persister == nil {
		return
	}

	all := make(map[string]*domain.Reservation, len(s.active)+len(s.cancelled))
	for code, r := range s.cancelled {
		all[code] = r
	}
	for code, r := range s.active {
		all[code] = r
	}

	reservations := make([]domain.Reservation, 0, len(all))
	tickets := make([]domain.Ticket, 0, len(s.tickets))
	for _, r := range sortedReservations(all) {
		reservations = append(reservations, *r)
		if t, ok := s.tickets[r.Code]; ok {
			tickets = append(tickets, *t)
		}
	}

	if err := s.persister.SaveAll(ctx, reservations, tickets); err != nil {
		log.Printf("WARNING: failed to persist reservations: %v", fmt.Errorf("%w: %w", domain.ErrIOFailure, err))
	}
}

func (s *BookingService) afterCommit(ctx context.Context, eventType string, reservation *domain.Reservation, ticket *domain.Ticket) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flights cache: %v", err)
		}
	}
	if err := s.publish(ctx, eventType, reservation, ticket); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, reservation.Code, err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, reservation *domain.Reservation, ticket *domain.Ticket) error {
	if s.producer == nil || s.reservationTopic == "" {
		return nil
	}
	event := kafka.ReservationEvent{
		ID:              uuid.NewString(),
		Type:            eventType,
		ReservationCode: reservation.Code,
		PassengerID:     reservation.Passenger.ID,
		PassengerName:   reservation.Passenger.FullName(),
		Contact:         reservation.Passenger.Contact,
		Status:          string(reservation.Status),
		OccurredAt:      s.now(),
	}
	if reservation.Flight != nil {
		event.FlightNumber = reservation.Flight.Number
	}
	if reservation.Seat != nil {
		event.SeatCode = reservation.Seat.Code
	}
	if ticket != nil {
		event.TicketID = ticket.ID
		event.Price = ticket.Price
	}

	if err := s.producer.Publish(ctx, s.reservationTopic, reservation.Code, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reservation.Code, event)
	}
	return nil
}

func sortedReservations(set map[string]*domain.Reservation) []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(set))
	for _, r := range set {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *domain.Reservation) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}

func copyReservation(r *domain.Reservation) *domain.Reservation {
	c := *r
	return &c
}

func copyTicket(t *domain.Ticket) *domain.Ticket {
	c := *t
	if t.Reservation != nil {
		c.Reservation = copyReservation(t.Reservation)
	}
	c.Baggage = copyBaggage(t.Baggage)
	return &c
}

func copyBaggage(b *domain.Baggage) *domain.Baggage {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

var _ BookingUseCase = (*BookingService)(nil)
