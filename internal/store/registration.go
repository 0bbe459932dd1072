package store

import (
	"context"

	"event-board-api/internal/model"
)

func (s *Store) CreateRegistration(ctx context.Context, r model.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Append(ctx, Registrations, r.Row())
}

func (s *Store) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readAll(ctx, Registrations)
	if err != nil {
		return nil, err
	}
	out := make([]model.Registration, len(rows))
	for i, r := range rows {
		out[i] = model.RegistrationFromRow(r)
	}
	return out, nil
}
