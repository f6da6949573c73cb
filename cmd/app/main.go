package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airseats/config"
	"github.com/Domenick1991/airseats/internal/bootstrap"
	"github.com/Domenick1991/airseats/internal/cache"
	"github.com/Domenick1991/airseats/internal/kafka"
	"github.com/Domenick1991/airseats/internal/pricing"
	"github.com/Domenick1991/airseats/internal/repository"
	"github.com/Domenick1991/airseats/internal/service/booking"
	"github.com/Domenick1991/airseats/internal/service/flights"
	"github.com/Domenick1991/airseats/internal/service/report"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		flightRepo      repository.FlightRepository
		reservationRepo repository.ReservationRepository
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		store := repository.NewFileSnapshotStore(cfg.Storage.SnapshotPath)
		flightRepo, reservationRepo = store, store
	default:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		flightRepo = repository.NewFlightRepository(pool)
		reservationRepo = repository.NewReservationRepository(pool)
	}

	cacheTTL := time.Duration(cfg.Booking.FlightsCacheTTL) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, cacheTTL)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("WARNING: redis unavailable: %v", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Printf("WARNING: kafka unavailable: %v", err)
	}

	flightService := flights.NewFlightService(flightRepo, redisCache, cfg.Booking.BusinessMultiplier)
	if err := flightService.Load(ctx); err != nil {
		log.Fatalf("load flights: %v", err)
	}

	calculator, err := pricing.NewCalculator(cfg.Booking.BusinessMultiplier, cfg.Booking.ExtraFeePerKg)
	if err != nil {
		log.Fatalf("pricing: %v", err)
	}

	bookingService := booking.NewBookingService(
		flightService,
		calculator,
		booking.WithPersister(reservationRepo),
		booking.WithProducer(producer, cfg.Kafka.ReservationTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithCache(redisCache),
		booking.WithBaggageAllowance(cfg.Booking.BaggageAllowanceKg),
	)

	records, err := reservationRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("load reservations: %v", err)
	}
	if err := bookingService.Restore(ctx, records); err != nil {
		log.Fatalf("restore reservations: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, bootstrap.Services{
		Flights:  flightService,
		Bookings: bookingService,
		Reports:  report.NewReportService(flightService, bookingService),
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
