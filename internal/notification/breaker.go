package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"studyhub/pkg/platform/circuit"
)

// ErrFellBack is returned when the fallback took a notification the primary
// could not. The notification reached the fallback only.
var ErrFellBack = errors.New("notification sent through fallback")

// Guarded sends through a remote primary and falls back while the primary's
// circuit is open.
type Guarded struct {
	primary  Notifier
	fallback Notifier
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewGuarded(primary, fallback Notifier, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	return &Guarded{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (g *Guarded) Notify(ctx context.Context, msg Notification) error {
	if !g.breaker.Allow() {
		return g.viaFallback(ctx, msg, fmt.Errorf("circuit %s open", g.breaker.Name()))
	}

	if err := g.primary.Notify(ctx, msg); err != nil {
		_, change := g.breaker.RecordFailure()
		if change.Opened {
			g.logger.WarnContext(ctx, "notification backend circuit opened",
				"breaker", g.breaker.Name(),
				"error", err,
			)
		}
		return g.viaFallback(ctx, msg, err)
	}

	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "notification backend circuit closed", "breaker", g.breaker.Name())
	}
	return nil
}

func (g *Guarded) viaFallback(ctx context.Context, msg Notification, cause error) error {
	if err := g.fallback.Notify(ctx, msg); err != nil {
		return errors.Join(cause, fmt.Errorf("fallback: %w", err))
	}
	return fmt.Errorf("%w: %w", ErrFellBack, cause)
}
