package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, NotifyLog, cfg.Notifications.Backend)
	assert.Equal(t, 5*time.Second, cfg.TxTimeout)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "studyhub.notifications", cfg.Kafka.NotificationTopic)
	assert.Equal(t, "studyhub", cfg.Tracing.ServiceName)
	assert.Empty(t, cfg.Tracing.Endpoint)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STUDYHUB_STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/studyhub?sslmode=disable")
	t.Setenv("NOTIFY_BACKEND", "kafka")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("STUDYHUB_TX_TIMEOUT", "750ms")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 750*time.Millisecond, cfg.TxTimeout)
}

func TestFromEnvErrors(t *testing.T) {
	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("STUDYHUB_TX_TIMEOUT", "soon")
		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("postgres without DSN", func(t *testing.T) {
		t.Setenv("STUDYHUB_STORAGE", "postgres")
		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("redis notifier without URL", func(t *testing.T) {
		t.Setenv("NOTIFY_BACKEND", "redis")
		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_URL")
	})

	for _, env := range []string{"production", "prod", "PROD"} {
		t.Run("dev signing key in "+env, func(t *testing.T) {
			t.Setenv("STUDYHUB_ENV", env)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "JWT_SIGNING_KEY")
		})
	}

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("NOTIFY_BACKEND", "pigeon")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
