package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airseats/config"
	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

// Generation returns the current cache generation. A missing counter is
// generation zero.
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

func (c *RedisCache) GetFlights(ctx context.Context, gen int64) ([]domain.FlightSummary, error) {
	var flights []domain.FlightSummary
	found, err := c.get(ctx, flightsKey(gen), &flights)
	if err != nil || !found {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, gen int64, flights []domain.FlightSummary) error {
	return c.set(ctx, flightsKey(gen), flights)
}

func (c *RedisCache) GetSeatMap(ctx context.Context, gen int64, flightNumber string) ([]domain.SeatView, error) {
	var seats []domain.SeatView
	found, err := c.get(ctx, seatMapKey(gen, flightNumber), &seats)
	if err != nil || !found {
		return nil, err
	}
	return seats, nil
}

func (c *RedisCache) SetSeatMap(ctx context.Context, gen int64, flightNumber string, seats []domain.SeatView) error {
	return c.set(ctx, seatMapKey(gen, flightNumber), seats)
}

// InvalidateFlights bumps the generation after each committed booking or
// cancellation. Entries of older generations expire with their TTL.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey()).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.flightsTTL).Err()
}

func generationKey() string {
	return "cache:flights:gen"
}

func flightsKey(gen int64) string {
	return fmt.Sprintf("cache:flights:%d", gen)
}

func seatMapKey(gen int64, flightNumber string) string {
	return fmt.Sprintf("cache:flight:%s:seats:%d", flightNumber, gen)
}
