package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher is the go-redis command used by RedisNotifier.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisNotifier publishes each notification as JSON on a per-recipient
// channel named "<prefix>:<recipient id>".
type RedisNotifier struct {
	client Publisher
	prefix string
}

func NewRedisNotifier(client Publisher, channelPrefix string) *RedisNotifier {
	return &RedisNotifier{client: client, prefix: channelPrefix}
}

// Channel returns the channel a recipient subscribes to.
func (n *RedisNotifier) Channel(msg Notification) string {
	return n.prefix + ":" + msg.RecipientID.String()
}

func (n *RedisNotifier) Notify(ctx context.Context, msg Notification) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := n.client.Publish(ctx, n.Channel(msg), payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
