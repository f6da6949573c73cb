package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Domenick1991/airseats/internal/domain"
	"gopkg.in/yaml.v3"
)

type snapshotDocument struct {
	Flights      []domain.FlightRecord      `yaml:"flights"`
	Reservations []domain.ReservationRecord `yaml:"reservations"`
}

// FileSnapshotStore keeps the fleet and every reservation in one YAML document.
// Writes go to a temp file in the same directory and are renamed into place.
type FileSnapshotStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) List(_ context.Context) ([]domain.FlightRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Flights, nil
}

func (s *FileSnapshotStore) GetByNumber(ctx context.Context, number string) (*domain.FlightRecord, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range flights {
		if flights[i].Number == number {
			return &flights[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, number)
}

// SaveFlights replaces the stored fleet, keeping the reservations.
func (s *FileSnapshotStore) SaveFlights(_ context.Context, flights []domain.FlightRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Flights = flights
	return s.write(doc)
}

func (s *FileSnapshotStore) SaveAll(_ context.Context, reservations []domain.Reservation, tickets []domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Reservations = domain.ToRecords(reservations, tickets)
	return s.write(doc)
}

func (s *FileSnapshotStore) LoadAll(_ context.Context) ([]domain.ReservationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Reservations, nil
}

func (s *FileSnapshotStore) read() (*snapshotDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &snapshotDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var doc snapshotDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *FileSnapshotStore) write(doc *snapshotDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}

var (
	_ ReservationRepository = (*FileSnapshotStore)(nil)
	_ FlightRepository      = (*FileSnapshotStore)(nil)
)
