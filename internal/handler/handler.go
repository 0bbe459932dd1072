package handler

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"event-board-api/internal/auth"
	"event-board-api/internal/eventpb"
	"event-board-api/internal/middleware"
	"event-board-api/internal/model"
	"event-board-api/internal/workflow"
)

type Handler struct {
	eventpb.UnimplementedEventBoardServer
	svc    *workflow.Service
	admin  *auth.Admin
	secret string
	log    *slog.Logger
}

func New(svc *workflow.Service, admin *auth.Admin, secret string, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, admin: admin, secret: secret, log: log}
}

// internal logs err and hides it from the caller.
func (h *Handler) internal(ctx context.Context, err error) error {
	h.log.ErrorContext(ctx, "storage fault", "err", err, "request_id", middleware.RequestIDFrom(ctx))
	return status.Error(codes.Internal, "internal error")
}

func eventFromPB(e *eventpb.Event) model.Event {
	if e == nil {
		return model.Event{}
	}
	return model.Event{
		Name:           e.Name,
		Date:           e.Date,
		Time:           e.Time,
		Venue:          e.Venue,
		OrganizerName:  e.OrganizerName,
		OrganizerPhone: e.OrganizerPhone,
		OrganizerEmail: e.OrganizerEmail,
	}
}

func eventToPB(e model.Event) *eventpb.Event {
	return &eventpb.Event{
		Name:           e.Name,
		Date:           e.Date,
		Time:           e.Time,
		Venue:          e.Venue,
		OrganizerName:  e.OrganizerName,
		OrganizerPhone: e.OrganizerPhone,
		OrganizerEmail: e.OrganizerEmail,
	}
}

func registrationFromPB(r *eventpb.Registration) model.Registration {
	if r == nil {
		return model.Registration{}
	}
	return model.Registration{
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		UserPhone: r.UserPhone,
		EventName: r.EventName,
	}
}

func registrationToPB(r model.Registration) *eventpb.Registration {
	return &eventpb.Registration{
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		UserPhone: r.UserPhone,
		EventName: r.EventName,
	}
}
