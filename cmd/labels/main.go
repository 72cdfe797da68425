package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storedcards"
)

const shutdownTimeout = 5 * time.Second

func main() {
	envPath := config.LoadEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	if envPath != "" {
		log.Info("Loaded environment file", zap.String("path", envPath))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.Close()

	labelRepo := postgresql.NewLabelRepo(database)
	cardRepo := postgresql.NewStoredCardRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	if cfg.Admin.Username != "" {
		if err := userRepo.CreateUser(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal("Failed to seed admin user", zap.Error(err))
		}
	}

	cards := storedcards.NewStore(log.Named("stored_cards"))
	stg := storage.NewStorage(database, labelRepo, cardRepo, outboxRepo, cards, log.Named("storage"))

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) == 0 {
		producer = kafka.NewConsoleProducer(log.Named("producer"))
	} else {
		producer = kafka.NewBrokerProducer(cfg.Kafka.Brokers, log.Named("producer"))
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Publisher.PollInterval,
		BatchSize:    cfg.Publisher.BatchSize,
		MaxAttempts:  cfg.Publisher.MaxAttempts,
	}, log.Named("publisher"))

	srv := server.New(cfg.HTTPPort, stg, userRepo, log.Named("http"))

	g, gCtx := errgroup.WithContext(ctx)
	publisher.Start(gCtx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		publisher.Shutdown(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error", zap.Error(err))
		return
	}
	log.Info("Service gracefully stopped")
}
