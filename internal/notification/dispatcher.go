package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("notification queue full")
	ErrClosed    = errors.New("notification dispatcher closed")
)

const (
	defaultBufferSize  = 256
	defaultSendTimeout = 2 * time.Second
)

type envelope struct {
	ctx context.Context
	msg Notification
}

// Dispatcher queues notifications and delivers them from a background
// goroutine. Notify never blocks; a full queue drops the notification.
type Dispatcher struct {
	backend  Notifier
	logger   *slog.Logger
	recorder Recorder
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan envelope
	done   chan struct{}
}

type DispatcherOption func(*Dispatcher)

func WithBufferSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan envelope, n)
		}
	}
}

func WithSendTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

// NewDispatcher starts the delivery goroutine. Call Close to drain and stop it.
func NewDispatcher(backend Notifier, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		backend: backend,
		logger:  slog.Default(),
		timeout: defaultSendTimeout,
		queue:   make(chan envelope, defaultBufferSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.run()
	return d
}

// Notify enqueues msg. The caller's cancellation does not abort delivery;
// request-scoped values such as the request id are kept.
func (d *Dispatcher) Notify(ctx context.Context, msg Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	select {
	case d.queue <- envelope{ctx: context.WithoutCancel(ctx), msg: msg}:
		return nil
	default:
		d.logger.WarnContext(ctx, "notification dropped",
			"kind", string(msg.Kind),
			"recipient_id", msg.RecipientID.String(),
			"reason", "queue_full",
		)
		if d.recorder != nil {
			d.recorder.NotificationDropped(string(msg.Kind))
		}
		return ErrQueueFull
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for env := range d.queue {
		d.deliver(env)
	}
}

func (d *Dispatcher) deliver(env envelope) {
	ctx, cancel := context.WithTimeout(env.ctx, d.timeout)
	defer cancel()

	kind := string(env.msg.Kind)
	err := d.backend.Notify(ctx, env.msg)
	switch {
	case err == nil:
		if d.recorder != nil {
			d.recorder.NotificationDelivered(kind)
		}
	case errors.Is(err, ErrFellBack):
		d.logger.DebugContext(ctx, "notification sent through fallback",
			"kind", kind,
			"recipient_id", env.msg.RecipientID.String(),
			"error", err,
		)
		if d.recorder != nil {
			d.recorder.NotificationFellBack(kind)
		}
	default:
		d.logger.WarnContext(ctx, "notification delivery failed",
			"kind", kind,
			"recipient_id", env.msg.RecipientID.String(),
			"group_id", env.msg.GroupID.String(),
			"error", err,
		)
		if d.recorder != nil {
			d.recorder.NotificationFailed(kind)
		}
	}
}

// Close stops accepting notifications and waits until the queue is drained
// or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
