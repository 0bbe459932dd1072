package handler

import (
	"context"

	"event-board-api/internal/eventpb"
)

func (h *Handler) RegisterForEvent(ctx context.Context, req *eventpb.RegisterForEventRequest) (*eventpb.StatusReply, error) {
	msg, err := h.svc.RegisterForEvent(ctx, registrationFromPB(req.Registration))
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	return &eventpb.StatusReply{Message: msg}, nil
}

func (h *Handler) ListRegistrations(ctx context.Context, _ *eventpb.ListRegistrationsRequest) (*eventpb.ListRegistrationsResponse, error) {
	regs, err := h.svc.ListRegistrations(ctx)
	if err != nil {
		return nil, h.internal(ctx, err)
	}
	out := make([]*eventpb.Registration, 0, len(regs))
	for _, r := range regs {
		out = append(out, registrationToPB(r))
	}
	return &eventpb.ListRegistrationsResponse{Registrations: out}, nil
}
