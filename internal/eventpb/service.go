package eventpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "eventboard.v1.EventBoardService"

const (
	EventBoardService_SubmitEvent_FullMethodName       = "/" + ServiceName + "/SubmitEvent"
	EventBoardService_ListEvents_FullMethodName        = "/" + ServiceName + "/ListEvents"
	EventBoardService_ListPendingEvents_FullMethodName = "/" + ServiceName + "/ListPendingEvents"
	EventBoardService_ApproveEvents_FullMethodName     = "/" + ServiceName + "/ApproveEvents"
	EventBoardService_RegisterForEvent_FullMethodName  = "/" + ServiceName + "/RegisterForEvent"
	EventBoardService_ListRegistrations_FullMethodName = "/" + ServiceName + "/ListRegistrations"
	EventBoardService_Login_FullMethodName             = "/" + ServiceName + "/Login"
)

type EventBoardServer interface {
	SubmitEvent(context.Context, *SubmitEventRequest) (*StatusReply, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	ListPendingEvents(context.Context, *ListPendingEventsRequest) (*ListPendingEventsResponse, error)
	ApproveEvents(context.Context, *ApproveEventsRequest) (*StatusReply, error)
	RegisterForEvent(context.Context, *RegisterForEventRequest) (*StatusReply, error)
	ListRegistrations(context.Context, *ListRegistrationsRequest) (*ListRegistrationsResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
}

// UnimplementedEventBoardServer can be embedded to stay forward compatible.
type UnimplementedEventBoardServer struct{}

func (UnimplementedEventBoardServer) SubmitEvent(context.Context, *SubmitEventRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitEvent not implemented")
}
func (UnimplementedEventBoardServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEvents not implemented")
}
func (UnimplementedEventBoardServer) ListPendingEvents(context.Context, *ListPendingEventsRequest) (*ListPendingEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPendingEvents not implemented")
}
func (UnimplementedEventBoardServer) ApproveEvents(context.Context, *ApproveEventsRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveEvents not implemented")
}
func (UnimplementedEventBoardServer) RegisterForEvent(context.Context, *RegisterForEventRequest) (*StatusReply, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterForEvent not implemented")
}
func (UnimplementedEventBoardServer) ListRegistrations(context.Context, *ListRegistrationsRequest) (*ListRegistrationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRegistrations not implemented")
}
func (UnimplementedEventBoardServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

// unary builds the method descriptor for call. The request type is taken
// from call's signature, so each entry below stays a single line.
func unary[T any, R any](name string, call func(EventBoardServer, context.Context, *T) (R, error)) grpc.MethodDesc {
	full := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(T)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(EventBoardServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*T))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EventBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SubmitEvent", EventBoardServer.SubmitEvent),
		unary("ListEvents", EventBoardServer.ListEvents),
		unary("ListPendingEvents", EventBoardServer.ListPendingEvents),
		unary("ApproveEvents", EventBoardServer.ApproveEvents),
		unary("RegisterForEvent", EventBoardServer.RegisterForEvent),
		unary("ListRegistrations", EventBoardServer.ListRegistrations),
		unary("Login", EventBoardServer.Login),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "eventboard/v1/eventboard.proto",
}

// RegisterEventBoardServer registers srv on s. The server must be created
// with grpc.ForceServerCodec(Codec{}).
func RegisterEventBoardServer(s grpc.ServiceRegistrar, srv EventBoardServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type EventBoardClient struct {
	cc grpc.ClientConnInterface
}

func NewEventBoardClient(cc grpc.ClientConnInterface) *EventBoardClient {
	return &EventBoardClient{cc: cc}
}

func (c *EventBoardClient) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *EventBoardClient) SubmitEvent(ctx context.Context, in *SubmitEventRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.invoke(ctx, EventBoardService_SubmitEvent_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	out := new(ListEventsResponse)
	if err := c.invoke(ctx, EventBoardService_ListEvents_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) ListPendingEvents(ctx context.Context, in *ListPendingEventsRequest, opts ...grpc.CallOption) (*ListPendingEventsResponse, error) {
	out := new(ListPendingEventsResponse)
	if err := c.invoke(ctx, EventBoardService_ListPendingEvents_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) ApproveEvents(ctx context.Context, in *ApproveEventsRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.invoke(ctx, EventBoardService_ApproveEvents_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) RegisterForEvent(ctx context.Context, in *RegisterForEventRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.invoke(ctx, EventBoardService_RegisterForEvent_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) ListRegistrations(ctx context.Context, in *ListRegistrationsRequest, opts ...grpc.CallOption) (*ListRegistrationsResponse, error) {
	out := new(ListRegistrationsResponse)
	if err := c.invoke(ctx, EventBoardService_ListRegistrations_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EventBoardClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.invoke(ctx, EventBoardService_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
