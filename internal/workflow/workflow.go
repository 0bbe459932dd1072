// Package workflow runs the three use cases of the event board: submitting an
// event, approving pending events, and registering for an approved event.
// Validation always completes before anything is written.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"event-board-api/internal/metrics"
	"event-board-api/internal/model"
	"event-board-api/internal/store"
	"event-board-api/internal/validate"
)

// Status messages returned on success.
const (
	MsgSubmitted  = "Event submitted for approval!"
	MsgApproved   = "Selected events approved and added successfully!"
	MsgNoPending  = "No pending events."
	MsgRegistered = "Registered successfully!"
)

type Service struct {
	store   *store.Store
	check   *validate.Validator
	metrics *metrics.Metrics
	log     *slog.Logger
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func New(st *store.Store, v *validate.Validator, opts ...Option) *Service {
	s := &Service{store: st, check: v, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SubmitEvent validates e and queues it for approval. The returned error is
// set only for storage faults; rejections come back as the status message.
func (s *Service) SubmitEvent(ctx context.Context, e model.Event) (string, error) {
	res := s.check.Event(e)
	s.metrics.Submitted(res.Accepted)
	if !res.Accepted {
		return res.Reason, nil
	}

	if err := s.store.CreatePendingEvent(ctx, model.PendingEvent(e)); err != nil {
		return "", s.fault("submit", err)
	}
	s.log.InfoContext(ctx, "event submitted", "event", e.Name, "date", e.Date)
	return MsgSubmitted, nil
}

func (s *Service) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, s.fault("list events", err)
	}
	return events, nil
}

// ListPendingEvents numbers the pending events by their current position. The
// indices are only meaningful to an ApproveSelected call that follows before
// any other approval.
func (s *Service) ListPendingEvents(ctx context.Context) ([]model.IndexedPendingEvent, error) {
	pending, err := s.store.ListPendingEvents(ctx)
	if err != nil {
		return nil, s.fault("list pending", err)
	}
	out := make([]model.IndexedPendingEvent, len(pending))
	for i, p := range pending {
		out[i] = model.IndexedPendingEvent{Index: i, Event: p}
	}
	return out, nil
}

// ApproveSelected approves the pending events at the given indices. Indices
// outside the table are ignored, and success is reported even if nothing moved.
func (s *Service) ApproveSelected(ctx context.Context, indices []int) (string, error) {
	moved, err := s.store.ApprovePending(ctx, indices)
	if errors.Is(err, store.ErrNoTable) {
		return MsgNoPending, nil
	}
	if err != nil {
		return "", s.fault("approve", err)
	}
	s.metrics.Approved(moved)
	s.log.InfoContext(ctx, "events approved", "requested", len(indices), "moved", moved)
	return MsgApproved, nil
}

// RegisterForEvent records r if it is valid and names an approved event.
func (s *Service) RegisterForEvent(ctx context.Context, r model.Registration) (string, error) {
	res := s.check.RegistrationFields(r)
	if res.Accepted {
		events, err := s.store.ListEvents(ctx)
		if err != nil {
			return "", s.fault("register", err)
		}
		res = validate.EventListed(r.EventName, events)
	}
	s.metrics.Registered(res.Accepted)
	if !res.Accepted {
		return res.Reason, nil
	}

	if err := s.store.CreateRegistration(ctx, r); err != nil {
		return "", s.fault("register", err)
	}
	s.log.InfoContext(ctx, "registration recorded", "event", r.EventName)
	return MsgRegistered, nil
}

func (s *Service) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	regs, err := s.store.ListRegistrations(ctx)
	if err != nil {
		return nil, s.fault("list registrations", err)
	}
	return regs, nil
}

func (s *Service) fault(op string, err error) error {
	s.metrics.StorageFault(op)
	return fmt.Errorf("%s: %w", op, err)
}
