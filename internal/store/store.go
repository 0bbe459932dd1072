package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNoTable is returned by a Backend when a table has never been written.
var ErrNoTable = errors.New("table does not exist")

type Table string

const (
	PendingEvents Table = "pending_events"
	Events        Table = "events"
	Registrations Table = "registrations"
)

var eventColumns = []string{
	"name", "event_date", "event_time", "venue", "organizer_name", "organizer_phone", "organizer_email",
}

var registrationColumns = []string{"user_name", "user_email", "user_phone", "event_name"}

// Columns lists the persisted columns of t in row order.
func (t Table) Columns() []string {
	if t == Registrations {
		return registrationColumns
	}
	return eventColumns
}

// Backend persists CSV-shaped rows. Implementations need not be safe for
// concurrent use; Store serialises access.
type Backend interface {
	ReadAll(ctx context.Context, t Table) ([][]string, error)
	Append(ctx context.Context, t Table, rows ...[]string) error
	ReplaceAll(ctx context.Context, t Table, rows [][]string) error
	Close() error
}

// Mover is implemented by backends that can move pending rows into the
// events table atomically.
type Mover interface {
	MovePending(ctx context.Context, indices []int) (int, error)
}

type Store struct {
	mu sync.Mutex
	b  Backend
}

func New(b Backend) *Store {
	return &Store{b: b}
}

func (s *Store) Close() error { return s.b.Close() }

// readAll treats a missing table as an empty one.
func (s *Store) readAll(ctx context.Context, t Table) ([][]string, error) {
	rows, err := s.b.ReadAll(ctx, t)
	if errors.Is(err, ErrNoTable) {
		return nil, nil
	}
	return rows, err
}

// split partitions rows into those whose index is in indices and the rest,
// both in table order. Out-of-range indices are ignored.
func split[T any](rows []T, indices []int) (selected, remaining []T) {
	want := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(rows) {
			want[i] = true
		}
	}
	for i, r := range rows {
		if want[i] {
			selected = append(selected, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	return selected, remaining
}
