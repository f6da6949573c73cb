package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverFile     = "file"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Storage    StorageConfig    `yaml:"storage"`
	Booking    BookingConfig    `yaml:"booking"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ReservationTopic   string   `yaml:"reservation_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type StorageConfig struct {
	Driver       string `yaml:"driver"`
	SnapshotPath string `yaml:"snapshot_path"`
}

type BookingConfig struct {
	BaggageAllowanceKg float64 `yaml:"baggage_allowance_kg"`
	BusinessMultiplier float64 `yaml:"business_multiplier"`
	ExtraFeePerKg      float64 `yaml:"extra_fee_per_kg"`
	FlightsCacheTTL    int     `yaml:"flights_cache_ttl_seconds"`
}

type SimulationConfig struct {
	Rows         int `yaml:"rows"`
	Columns      int `yaml:"columns"`
	BusinessRows int `yaml:"business_rows"`
	Passengers   int `yaml:"passengers"`
	Trials       int `yaml:"trials"`
	RaceWindowMs int `yaml:"race_window_ms"`
}

// Default returns the configuration used for every key the YAML file omits.
func Default() Config {
	return Config{
		HTTP:     HTTPConfig{Address: ":8080", SwaggerDir: "docs/swagger"},
		GRPC:     GRPCConfig{Address: ":9090"},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "airseats", Name: "airseats", SSLMode: "disable"},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			ReservationTopic:   "reservation-events",
			NotificationsTopic: "notifications",
			GroupID:            "airseats-notifier",
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres, SnapshotPath: "data/snapshot.yaml"},
		Booking: BookingConfig{
			BaggageAllowanceKg: 15,
			BusinessMultiplier: 1.5,
			ExtraFeePerKg:      10,
			FlightsCacheTTL:    30,
		},
		Simulation: SimulationConfig{Rows: 30, Columns: 6, Passengers: 90, Trials: 1, RaceWindowMs: 1},
	}
}

// LoadConfig reads the YAML file at path on top of Default. Secrets can be
// supplied through the environment or a .env file in the working directory.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AIRSEATS_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("AIRSEATS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("AIRSEATS_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
	case StorageDriverFile:
		if c.Storage.SnapshotPath == "" {
			return errors.New("invalid config: storage.snapshot_path is required for the file driver")
		}
	default:
		return fmt.Errorf("invalid config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Booking.BusinessMultiplier <= 0 {
		return errors.New("invalid config: booking.business_multiplier must be positive")
	}
	if c.Booking.BaggageAllowanceKg < 0 || c.Booking.ExtraFeePerKg < 0 {
		return errors.New("invalid config: booking baggage settings cannot be negative")
	}
	return nil
}
