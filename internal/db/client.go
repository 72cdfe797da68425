package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/config"
)

const (
	readyAttempts = 5
	readyDelay    = time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

func NewDb(ctx context.Context, cfg config.Postgres) (*Database, error) {
	pool, err := pgxpool.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	database := NewDatabase(pool)
	if err := waitReady(ctx, database, readyAttempts, readyDelay); err != nil {
		database.Close()
		return nil, fmt.Errorf("postgres at %s:%d is not ready: %w", cfg.Host, cfg.Port, err)
	}
	return database, nil
}

// waitReady pings p until it answers, giving up after attempts pings.
func waitReady(ctx context.Context, p pinger, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = p.Ping(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
