package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"event-board-api/internal/auth"
	"event-board-api/internal/eventpb"
	"event-board-api/internal/handler"
	"event-board-api/internal/middleware"
	"event-board-api/internal/store"
	"event-board-api/internal/validate"
	"event-board-api/internal/workflow"
)

const secret = "test-secret"

var today = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

type env struct {
	client *eventpb.EventBoardClient
	paths  store.Paths
}

// setup serves the full interceptor chain over an in-memory listener.
func setup(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	p := store.Paths{
		PendingEvents: filepath.Join(dir, "pending_events.csv"),
		Events:        filepath.Join(dir, "events.csv"),
		Registrations: filepath.Join(dir, "registrations.csv"),
	}
	b, err := store.NewFileBackend(p)
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	v, err := validate.New(validate.WithClock(func() time.Time { return today }))
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	admin, err := auth.NewAdmin("admin", "123", "")
	if err != nil {
		t.Fatalf("admin: %v", err)
	}
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := workflow.New(store.New(b), v, workflow.WithLogger(log))
	h := handler.New(svc, admin, secret, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(eventpb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Recover(log),
			middleware.Logging(log, nil),
			middleware.RateLimit(middleware.NewRateLimiter(ctx, 100, 100)),
			middleware.Auth(secret),
		),
	)
	eventpb.RegisterEventBoardServer(srv, h)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return env{client: eventpb.NewEventBoardClient(conn), paths: p}
}

func event(name string) *eventpb.Event {
	return &eventpb.Event{
		Name:           name,
		Date:           "20-03-2025",
		Time:           "18:00",
		Venue:          "Main Hall",
		OrganizerName:  "Grace",
		OrganizerPhone: "5550001111",
		OrganizerEmail: "grace@example.com",
	}
}

func login(t *testing.T, c *eventpb.EventBoardClient) context.Context {
	t.Helper()
	resp, err := c.Login(context.Background(), &eventpb.LoginRequest{Id: "admin", Password: "123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.Token)
}

func submit(t *testing.T, c *eventpb.EventBoardClient, names ...string) {
	t.Helper()
	for _, n := range names {
		r, err := c.SubmitEvent(context.Background(), &eventpb.SubmitEventRequest{Event: event(n)})
		if err != nil {
			t.Fatalf("submit %s: %v", n, err)
		}
		if r.Message != workflow.MsgSubmitted {
			t.Fatalf("submit %s: %q", n, r.Message)
		}
	}
}

func TestSubmitApproveRegister(t *testing.T) {
	e := setup(t)
	c := e.client
	submit(t, c, "Launch", "Meetup")

	admin := login(t, c)
	pending, err := c.ListPendingEvents(admin, &eventpb.ListPendingEventsRequest{})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending.Pending) != 2 || pending.Pending[1].Index != 1 || pending.Pending[1].Event.Name != "Meetup" {
		t.Fatalf("pending: %+v", pending.Pending)
	}

	r, err := c.ApproveEvents(admin, &eventpb.ApproveEventsRequest{Indices: []int64{1}})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if r.Message != workflow.MsgApproved {
		t.Errorf("approve: %q", r.Message)
	}

	events, err := c.ListEvents(context.Background(), &eventpb.ListEventsRequest{})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events.Events) != 1 || *events.Events[0] != *event("Meetup") {
		t.Fatalf("events: %+v", events.Events)
	}

	reg := &eventpb.Registration{UserName: "Linus", UserEmail: "linus@example.com", UserPhone: "5551234567", EventName: "Meetup"}
	r, err = c.RegisterForEvent(context.Background(), &eventpb.RegisterForEventRequest{Registration: reg})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if r.Message != workflow.MsgRegistered {
		t.Errorf("register: %q", r.Message)
	}

	regs, err := c.ListRegistrations(admin, &eventpb.ListRegistrationsRequest{})
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(regs.Registrations) != 1 || *regs.Registrations[0] != *reg {
		t.Errorf("registrations: %+v", regs.Registrations)
	}
}

func TestRejectionIsAReplyNotAnError(t *testing.T) {
	c := setup(t).client

	bad := event("Late")
	bad.Date = "01-01-2020"
	r, err := c.SubmitEvent(context.Background(), &eventpb.SubmitEventRequest{Event: bad})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Message != validate.MsgDatePast {
		t.Errorf("got %q", r.Message)
	}

	// missing message body behaves like an empty form
	r, err = c.SubmitEvent(context.Background(), &eventpb.SubmitEventRequest{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Message != validate.MsgEventNameRequired {
		t.Errorf("got %q", r.Message)
	}

	r, err = c.RegisterForEvent(context.Background(), &eventpb.RegisterForEventRequest{
		Registration: &eventpb.Registration{UserName: "A", UserEmail: "a@b.co", UserPhone: "5551234567", EventName: "Ghost"},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if r.Message != validate.MsgEventNotFound {
		t.Errorf("got %q", r.Message)
	}
}

func TestAdminMethodsNeedToken(t *testing.T) {
	c := setup(t).client
	ctx := context.Background()

	calls := map[string]func() error{
		"ListPendingEvents": func() error {
			_, err := c.ListPendingEvents(ctx, &eventpb.ListPendingEventsRequest{})
			return err
		},
		"ApproveEvents": func() error {
			_, err := c.ApproveEvents(ctx, &eventpb.ApproveEventsRequest{Indices: []int64{0}})
			return err
		},
		"ListRegistrations": func() error {
			_, err := c.ListRegistrations(ctx, &eventpb.ListRegistrationsRequest{})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); status.Code(err) != codes.Unauthenticated {
				t.Errorf("expected Unauthenticated, got %v", err)
			}
		})
	}
}

func TestLoginRejected(t *testing.T) {
	c := setup(t).client
	tests := []struct {
		name string
		req  *eventpb.LoginRequest
		code codes.Code
	}{
		{"empty", &eventpb.LoginRequest{}, codes.InvalidArgument},
		{"wrong password", &eventpb.LoginRequest{Id: "admin", Password: "1234"}, codes.Unauthenticated},
		{"wrong id", &eventpb.LoginRequest{Id: "root", Password: "123"}, codes.Unauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Login(context.Background(), tt.req)
			if status.Code(err) != tt.code {
				t.Errorf("expected %v, got %v", tt.code, err)
			}
		})
	}
}

func TestApproveWithNoPendingTable(t *testing.T) {
	c := setup(t).client
	r, err := c.ApproveEvents(login(t, c), &eventpb.ApproveEventsRequest{Indices: []int64{0}})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if r.Message != workflow.MsgNoPending {
		t.Errorf("got %q", r.Message)
	}
}

func TestStorageFaultIsInternal(t *testing.T) {
	e := setup(t)
	if err := os.Mkdir(e.paths.Events, 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := e.client.ListEvents(context.Background(), &eventpb.ListEventsRequest{})
	s, _ := status.FromError(err)
	if s.Code() != codes.Internal || s.Message() != "internal error" {
		t.Errorf("expected opaque Internal, got %v", err)
	}
}

func TestRequestIDHeader(t *testing.T) {
	c := setup(t).client
	var hdr metadata.MD
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "trace-1")
	if _, err := c.ListEvents(ctx, &eventpb.ListEventsRequest{}, grpc.Header(&hdr)); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if got := hdr.Get("x-request-id"); len(got) != 1 || got[0] != "trace-1" {
		t.Errorf("header: %v", got)
	}
}
