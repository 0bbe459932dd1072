package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"event-board-api/internal/auth"
	"event-board-api/internal/eventpb"
)

func (h *Handler) Login(ctx context.Context, req *eventpb.LoginRequest) (*eventpb.LoginResponse, error) {
	if req.Id == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "id and password required")
	}

	if err := h.admin.Check(req.Id, req.Password); err != nil {
		h.log.WarnContext(ctx, "admin login failed", "id", req.Id)
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, err := auth.MakeToken(h.admin.ID(), h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &eventpb.LoginResponse{Token: tok}, nil
}
