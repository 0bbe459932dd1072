package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"event-board-api/internal/auth"
	"event-board-api/internal/eventpb"
)

type ctxKey string

const (
	AdminKey     ctxKey = "admin"
	RequestIDKey ctxKey = "request_id"
)

// admin only; everything else is public
var protected = map[string]bool{
	eventpb.EventBoardService_ListPendingEvents_FullMethodName: true,
	eventpb.EventBoardService_ApproveEvents_FullMethodName:     true,
	eventpb.EventBoardService_ListRegistrations_FullMethodName: true,
}

func Auth(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !protected[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		ctx = context.WithValue(ctx, AdminKey, claims.Subject)
		return next(ctx, req)
	}
}

// AdminFrom returns the authenticated admin id, if any.
func AdminFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AdminKey).(string)
	return id, ok
}
