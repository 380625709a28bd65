package notification

import (
	"context"
	"encoding/json"
	"fmt"
)

// Producer is satisfied by the platform kafka producer.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

// KafkaNotifier writes notifications to a topic keyed by recipient, so a
// recipient's notices stay ordered within one partition.
type KafkaNotifier struct {
	producer Producer
}

func NewKafkaNotifier(producer Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (n *KafkaNotifier) Notify(ctx context.Context, msg Notification) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := n.producer.Publish(ctx, []byte(msg.RecipientID.String()), payload); err != nil {
		return fmt.Errorf("produce notification: %w", err)
	}
	return nil
}
