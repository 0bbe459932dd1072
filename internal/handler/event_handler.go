package handler

import (
	"context"

	"event-board-api/internal/eventpb"
	"event-board-api/internal/model"
)

// SubmitEvent replies with the validation outcome; only storage faults are
// returned as errors.
func (h *Handler) SubmitEvent(ctx context.Context, req *eventpb.SubmitEventRequest) (*eventpb.StatusReply, error) {
	msg, err := h.svc.SubmitEvent(ctx, eventFromPB(req.Event))
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	return &eventpb.StatusReply{Message: msg}, nil
}

func (h *Handler) ListEvents(ctx context.Context, _ *eventpb.ListEventsRequest) (*eventpb.ListEventsResponse, error) {
	events, err := h.svc.ListEvents(ctx)
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	out := make([]*eventpb.Event, 0, len(events))
	for _, e := range events {
		out = append(out, eventToPB(e))
	}
	return &eventpb.ListEventsResponse{Events: out}, nil
}

func (h *Handler) ListPendingEvents(ctx context.Context, _ *eventpb.ListPendingEventsRequest) (*eventpb.ListPendingEventsResponse, error) {
	pending, err := h.svc.ListPendingEvents(ctx)
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	out := make([]*eventpb.PendingEvent, 0, len(pending))
	for _, p := range pending {
		out = append(out, &eventpb.PendingEvent{
			Index: int64(p.Index),
			Event: eventToPB(model.Event(p.Event)),
		})
	}
	return &eventpb.ListPendingEventsResponse{Pending: out}, nil
}

func (h *Handler) ApproveEvents(ctx context.Context, req *eventpb.ApproveEventsRequest) (*eventpb.StatusReply, error) {
	indices := make([]int, len(req.Indices))
	for i, v := range req.Indices {
		indices[i] = int(v)
	}
	msg, err := h.svc.ApproveSelected(ctx, indices)
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	return &eventpb.StatusReply{Message: msg}, nil
}
