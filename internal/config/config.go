package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", p.Host, p.Port, p.User, p.Password, p.Database)
}

type Kafka struct {
	// Brokers left blank (e.g. ",") switch the service to the console producer.
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	// Topics is the set the consumer subscribes to.
	Topics  []string `env:"KAFKA_TOPICS" envDefault:"label_dialogs,label_telemetry" envSeparator:","`
	GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"label-intents-consumer-group"`
}

type Publisher struct {
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"2s"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	MaxAttempts  int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"5"`
}

// Admin is the operator account seeded on startup. Empty Username skips seeding.
type Admin struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"9000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`
	Postgres  Postgres
	Kafka     Kafka
	Publisher Publisher
	Admin     Admin
}

// LoadEnv loads the first .env (or .example.env) found in the working
// directory or its two parents. It returns the path it loaded, or "" when
// nothing was found and only the process environment applies.
func LoadEnv() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	var candidates []string
	for _, dir := range []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")} {
		candidates = append(candidates, filepath.Join(dir, ".env"))
	}
	for _, dir := range []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")} {
		candidates = append(candidates, filepath.Join(dir, ".example.env"))
	}

	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Kafka.Brokers = trimList(cfg.Kafka.Brokers)
	cfg.Kafka.Topics = trimList(cfg.Kafka.Topics)
	return cfg, nil
}

func trimList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
