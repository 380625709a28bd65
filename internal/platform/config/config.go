package config

import (
	"fmt"
	"time"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string        `env:"STUDYHUB_ADDR" envDefault:":8080"`
	Environment   string        `env:"STUDYHUB_ENV" envDefault:"dev"`
	LogLevel      string        `env:"STUDYHUB_LOG_LEVEL" envDefault:"info"`
	JWTSigningKey string        `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string        `env:"JWT_ISSUER" envDefault:"studyhub"`
	JWTAudience   string        `env:"JWT_AUDIENCE" envDefault:"studyhub-api"`
	AdminToken    string        `env:"STUDYHUB_ADMIN_TOKEN"`
	HTTPTimeout   time.Duration `env:"STUDYHUB_HTTP_TIMEOUT" envDefault:"30s"`
	Storage       string        `env:"STUDYHUB_STORAGE" envDefault:"memory"`
	TxTimeout     time.Duration `env:"STUDYHUB_TX_TIMEOUT" envDefault:"5s"`
	ShutdownGrace time.Duration `env:"STUDYHUB_SHUTDOWN_GRACE" envDefault:"10s"`

	Postgres      Postgres
	Redis         RedisConfig
	Kafka         Kafka
	Notifications Notifications
	Tracing       Tracing
}

// Postgres configures the SQL connection pool.
type Postgres struct {
	DSN             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
	EnsureSchema    bool          `env:"DATABASE_ENSURE_SCHEMA" envDefault:"true"`
}

// RedisConfig configures the Redis client used by the redis notification backend.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Kafka configures the notification producer.
type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"studyhub.notifications"`
	Partitions        int32    `env:"KAFKA_NOTIFICATION_PARTITIONS" envDefault:"3"`
	ReplicationFactor int16    `env:"KAFKA_REPLICATION_FACTOR" envDefault:"1"`
}

// Notifications selects and tunes the notification backend.
type Notifications struct {
	// Backend is one of "log", "redis", "kafka".
	Backend          string        `env:"NOTIFY_BACKEND" envDefault:"log"`
	BufferSize       int           `env:"NOTIFY_BUFFER_SIZE" envDefault:"256"`
	SendTimeout      time.Duration `env:"NOTIFY_SEND_TIMEOUT" envDefault:"2s"`
	FailureThreshold int           `env:"NOTIFY_FAILURE_THRESHOLD" envDefault:"5"`
	RedisChannel     string        `env:"NOTIFY_REDIS_CHANNEL_PREFIX" envDefault:"studyhub:notifications"`
}

// Tracing enables the OTLP span exporter. Tracing is off when Endpoint is empty.
type Tracing struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"studyhub"`
}

const devSigningKey = "dev-secret-key-change-in-production"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	NotifyLog   = "log"
	NotifyRedis = "redis"
	NotifyKafka = "kafka"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (c Server) Validate() error {
	if c.IsProduction() && c.JWTSigningKey == devSigningKey {
		return fmt.Errorf("JWT_SIGNING_KEY must be set in production")
	}
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when STUDYHUB_STORAGE=postgres")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	switch c.Notifications.Backend {
	case NotifyLog:
	case NotifyRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required when NOTIFY_BACKEND=redis")
		}
	case NotifyKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when NOTIFY_BACKEND=kafka")
		}
	default:
		return fmt.Errorf("unknown notification backend %q", c.Notifications.Backend)
	}
	return nil
}

// IsProduction reports whether the process runs with production defaults.
func (c Server) IsProduction() bool {
	return strings.EqualFold(c.Environment, "prod") || strings.EqualFold(c.Environment, "production")
}
