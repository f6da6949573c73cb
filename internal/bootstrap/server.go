package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airseats/api"
	"github.com/Domenick1991/airseats/config"
	flightsapi "github.com/Domenick1991/airseats/internal/api/flights_service_api"
	reservationsapi "github.com/Domenick1991/airseats/internal/api/reservations_service_api"
	"github.com/Domenick1991/airseats/internal/api/rpc"
	"github.com/Domenick1991/airseats/internal/service/booking"
	"github.com/Domenick1991/airseats/internal/service/flights"
	"github.com/Domenick1991/airseats/internal/service/report"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
)

type Services struct {
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Reports  report.ReportUseCase
}

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP (gin + swagger) servers and blocks until the
// context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	s := newServers(cfg, svc)

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Printf("gRPC listening on %s, HTTP on %s", cfg.GRPC.Address, cfg.HTTP.Address)

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, svc Services) *Servers {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(rpc.UnaryLogging))
	flightsapi.RegisterFlightsServiceServer(grpcSrv, flightsapi.NewServer(svc.Flights))
	reservationsapi.RegisterReservationsServiceServer(grpcSrv, reservationsapi.NewServer(svc.Bookings))

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           NewRouter(cfg.HTTP, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func NewRouter(cfg config.HTTPConfig, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewFlightHandler(svc.Flights).Register(router.Group("/flights"))
	api.NewReservationHandler(svc.Bookings).Register(router.Group("/reservations"))
	if svc.Reports != nil {
		api.NewReportHandler(svc.Reports).Register(router.Group("/reports"))
	}

	if cfg.SwaggerDir != "" {
		router.Static("/swagger", cfg.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/airseats.swagger.json"))))
	}
	return router
}
