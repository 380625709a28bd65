package main

import (
	"context"
	"fmt"
	"log/slog"

	"studyhub/internal/notification"
	"studyhub/internal/platform/config"
	"studyhub/internal/platform/kafka"
	"studyhub/internal/platform/postgres"
	"studyhub/internal/platform/redis"
	"studyhub/internal/studygroup/metrics"
	"studyhub/internal/studygroup/service"
	"studyhub/internal/studygroup/store"
	"studyhub/pkg/platform/circuit"
)

// buildAdmissionTx selects the storage backend. The returned close func is
// always safe to call.
func buildAdmissionTx(ctx context.Context, cfg config.Server, m *metrics.Metrics, log *slog.Logger) (service.AdmissionTx, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		return service.NewInMemoryStores(cfg.TxTimeout), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Postgres.EnsureSchema {
		if err := store.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	tx := store.NewPostgresTx(db,
		store.WithTimeout(cfg.TxTimeout),
		store.WithRetryHook(m.IncrementTxRetry),
	)
	return tx, func() { _ = db.Close() }, nil
}

// buildNotifier returns the delivery backend. Remote backends sit behind a
// circuit breaker that falls back to the log notifier.
func buildNotifier(ctx context.Context, cfg config.Server, log *slog.Logger) (notification.Notifier, func(), error) {
	fallback := notification.NewLogNotifier(log)
	breaker := circuit.New("notifications", circuit.WithFailureThreshold(cfg.Notifications.FailureThreshold))

	switch cfg.Notifications.Backend {
	case config.NotifyRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis notifier: %w", err)
		}
		primary := notification.NewRedisNotifier(client, cfg.Notifications.RedisChannel)
		return notification.NewGuarded(primary, fallback, breaker, log), func() { _ = client.Close() }, nil
	case config.NotifyKafka:
		producer, err := kafka.NewProducer(ctx, cfg.Kafka)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka notifier: %w", err)
		}
		primary := notification.NewKafkaNotifier(producer)
		return notification.NewGuarded(primary, fallback, breaker, log), producer.Close, nil
	default:
		return fallback, func() {}, nil
	}
}

func newDispatcher(cfg config.Server, backend notification.Notifier, m *metrics.Metrics, log *slog.Logger) *notification.Dispatcher {
	return notification.NewDispatcher(backend,
		notification.WithBufferSize(cfg.Notifications.BufferSize),
		notification.WithSendTimeout(cfg.Notifications.SendTimeout),
		notification.WithLogger(log),
		notification.WithRecorder(m),
	)
}
