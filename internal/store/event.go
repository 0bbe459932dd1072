package store

import (
	"context"

	"event-board-api/internal/model"
)

func (s *Store) CreatePendingEvent(ctx context.Context, e model.PendingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Append(ctx, PendingEvents, e.Row())
}

func (s *Store) ListPendingEvents(ctx context.Context) ([]model.PendingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readAll(ctx, PendingEvents)
	if err != nil {
		return nil, err
	}
	out := make([]model.PendingEvent, len(rows))
	for i, r := range rows {
		out[i] = model.PendingEventFromRow(r)
	}
	return out, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readAll(ctx, Events)
	if err != nil {
		return nil, err
	}
	out := make([]model.Event, len(rows))
	for i, r := range rows {
		out[i] = model.EventFromRow(r)
	}
	return out, nil
}

// ApprovePending moves the pending events at the given positions into the
// events table and reports how many moved. It returns ErrNoTable when nothing
// was ever submitted.
//
// Selected rows are appended to events before pending is rewritten, so a crash
// in between leaves a row in both tables rather than in neither.
func (s *Store) ApprovePending(ctx context.Context, indices []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.b.(Mover); ok {
		return m.MovePending(ctx, indices)
	}

	rows, err := s.b.ReadAll(ctx, PendingEvents)
	if err != nil {
		return 0, err
	}
	selected, remaining := split(rows, indices)
	if len(selected) == 0 {
		return 0, nil
	}

	if err := s.b.Append(ctx, Events, selected...); err != nil {
		return 0, err
	}
	if err := s.b.ReplaceAll(ctx, PendingEvents, remaining); err != nil {
		return 0, err
	}
	return len(selected), nil
}
