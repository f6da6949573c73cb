package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airseats/config"
	"github.com/Domenick1991/airseats/internal/email"
	"github.com/Domenick1991/airseats/internal/kafka"
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

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.ReservationTopic
	}
	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic)
	defer consumer.Close()

	emailSender := email.NewSender()

	log.Printf("worker consuming %s as %s", topic, cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, kafka.ReservationHandler(emailSender.Send)); err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("worker stopped")
}
