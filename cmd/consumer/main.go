package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/intent"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/logger"
)

const retryDelay = 5 * time.Second

func main() {
	config.LoadEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel).Named("consumer")
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting Kafka consumer",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.Strings("topics", cfg.Kafka.Topics),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		GroupTopics:    cfg.Kafka.Topics,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Info("Closing Kafka reader")
		if err := r.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("Shutdown signal received, stopping consumer")
				return
			}
			log.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		in, err := intent.Unmarshal(m.Value)
		if err != nil {
			log.Warn("Skipping malformed intent",
				zap.String("topic", m.Topic),
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
			continue
		}

		log.Info("Intent received",
			zap.String("topic", m.Topic),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.String("key", string(m.Key)),
			zap.String("kind", string(in.Kind)),
			zap.Int64("order_id", in.OrderID),
			zap.Int64("site_id", in.SiteID),
			zap.Int64("label_id", in.LabelID),
			zap.String("event_name", in.EventName),
			zap.Any("properties", in.Properties),
			zap.Time("timestamp", m.Time),
		)
	}
}
