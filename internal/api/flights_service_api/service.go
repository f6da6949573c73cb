package flights_service_api

import (
	"context"

	"github.com/Domenick1991/airseats/internal/api/rpc"
	"google.golang.org/grpc"
)

const ServiceName = "airseats.flights.v1.FlightsService"

type FlightsServiceServer interface {
	ListFlights(context.Context, *Empty) (*ListFlightsResponse, error)
	GetFlight(context.Context, *GetFlightRequest) (*GetFlightResponse, error)
	GetSeatMap(context.Context, *GetFlightRequest) (*SeatMapResponse, error)
	SearchFlights(context.Context, *SearchFlightsRequest) (*ListFlightsResponse, error)
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&FlightsService_ServiceDesc, srv)
}

var FlightsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFlights", Handler: listFlightsHandler},
		{MethodName: "GetFlight", Handler: getFlightHandler},
		{MethodName: "GetSeatMap", Handler: getSeatMapHandler},
		{MethodName: "SearchFlights", Handler: searchFlightsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flights.proto",
}

func listFlightsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).ListFlights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListFlights"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightsServiceServer).ListFlights(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getFlightHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetFlightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).GetFlight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetFlight"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightsServiceServer).GetFlight(ctx, req.(*GetFlightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getSeatMapHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetFlightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).GetSeatMap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetSeatMap"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightsServiceServer).GetSeatMap(ctx, req.(*GetFlightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func searchFlightsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchFlightsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).SearchFlights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/SearchFlights"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FlightsServiceServer).SearchFlights(ctx, req.(*SearchFlightsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListFlights(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListFlightsResponse, error) {
	out := new(ListFlightsResponse)
	if err := c.invoke(ctx, "ListFlights", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlight(ctx context.Context, in *GetFlightRequest, opts ...grpc.CallOption) (*GetFlightResponse, error) {
	out := new(GetFlightResponse)
	if err := c.invoke(ctx, "GetFlight", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSeatMap(ctx context.Context, in *GetFlightRequest, opts ...grpc.CallOption) (*SeatMapResponse, error) {
	out := new(SeatMapResponse)
	if err := c.invoke(ctx, "GetSeatMap", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchFlights(ctx context.Context, in *SearchFlightsRequest, opts ...grpc.CallOption) (*ListFlightsResponse, error) {
	out := new(ListFlightsResponse)
	if err := c.invoke(ctx, "SearchFlights", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{rpc.CallOption()}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
