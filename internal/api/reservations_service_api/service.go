package reservations_service_api

import (
	"context"

	"github.com/Domenick1991/airseats/internal/api/rpc"
	"google.golang.org/grpc"
)

const ServiceName = "airseats.reservations.v1.ReservationsService"

type ReservationsServiceServer interface {
	Book(context.Context, *BookRequest) (*Ticket, error)
	CancelReservation(context.Context, *CodeRequest) (*Reservation, error)
	GetReservation(context.Context, *CodeRequest) (*Reservation, error)
	GetTicket(context.Context, *CodeRequest) (*Ticket, error)
}

func RegisterReservationsServiceServer(s grpc.ServiceRegistrar, srv ReservationsServiceServer) {
	s.RegisterService(&ReservationsService_ServiceDesc, srv)
}

var ReservationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Book", Handler: bookHandler},
		{MethodName: "CancelReservation", Handler: cancelHandler},
		{MethodName: "GetReservation", Handler: getReservationHandler},
		{MethodName: "GetTicket", Handler: getTicketHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reservations.proto",
}

func bookHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationsServiceServer).Book(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Book"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationsServiceServer).Book(ctx, req.(*BookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func cancelHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationsServiceServer).CancelReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/CancelReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationsServiceServer).CancelReservation(ctx, req.(*CodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getReservationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationsServiceServer).GetReservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetReservation"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationsServiceServer).GetReservation(ctx, req.(*CodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getTicketHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReservationsServiceServer).GetTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetTicket"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReservationsServiceServer).GetTicket(ctx, req.(*CodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls the reservations service over the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Book(ctx context.Context, in *BookRequest, opts ...grpc.CallOption) (*Ticket, error) {
	out := new(Ticket)
	if err := c.invoke(ctx, "Book", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelReservation(ctx context.Context, in *CodeRequest, opts ...grpc.CallOption) (*Reservation, error) {
	out := new(Reservation)
	if err := c.invoke(ctx, "CancelReservation", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReservation(ctx context.Context, in *CodeRequest, opts ...grpc.CallOption) (*Reservation, error) {
	out := new(Reservation)
	if err := c.invoke(ctx, "GetReservation", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTicket(ctx context.Context, in *CodeRequest, opts ...grpc.CallOption) (*Ticket, error) {
	out := new(Ticket)
	if err := c.invoke(ctx, "GetTicket", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{rpc.CallOption()}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
