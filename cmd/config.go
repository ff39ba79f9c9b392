package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort               string
	LogLevel               string
	StorageBackend         string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	FeedRefreshSchedule    string
}

// Validate checks the settings the composition root depends on.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	switch c.Storage() {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s backend", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		return fmt.Errorf("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_HOST is set")
	}
	return nil
}

// Storage returns the storage backend, postgres unless configured otherwise.
func (c Config) Storage() string {
	if c.StorageBackend == "" {
		return StoragePostgres
	}
	return strings.ToLower(c.StorageBackend)
}

// DSN is the keyword/value connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Level parses LOG_LEVEL, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
