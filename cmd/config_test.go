package cmd_test

import (
	"log/slog"
	"testing"

	"grocery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  cmd.Config
		wantErr bool
	}{
		{"memory backend", cmd.Config{HTTPPort: "8082", StorageBackend: "memory"}, false},
		{"postgres backend", cmd.Config{HTTPPort: "8082", DBHost: "db", DBName: "grocery"}, false},
		{"missing port", cmd.Config{StorageBackend: "memory"}, true},
		{"postgres without host", cmd.Config{HTTPPort: "8082", StorageBackend: "postgres"}, true},
		{"unknown backend", cmd.Config{HTTPPort: "8082", StorageBackend: "redis"}, true},
		{"kafka without topic", cmd.Config{HTTPPort: "8082", StorageBackend: "memory", KafkaHost: "kafka:9092"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Helpers(t *testing.T) {
	c := cmd.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "grocery",
		DBPassword: "secret",
		DBName:     "orders",
		DBSslMode:  "disable",
		KafkaHost:  "k1:9092, k2:9092,",
		LogLevel:   "debug",
	}

	assert.Equal(t, cmd.StoragePostgres, c.Storage())
	assert.Equal(t, "host=localhost port=5432 user=grocery password=secret dbname=orders sslmode=disable", c.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers())
	assert.Equal(t, slog.LevelDebug, c.Level())
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "loud"}.Level())
}
