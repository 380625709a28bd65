package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/notification"
)

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisNotifier_PublishesPerRecipientChannel(t *testing.T) {
	pub := &fakePublisher{}
	n := notification.NewRedisNotifier(pub, "studyhub:notifications")
	msg := sample(notification.KindRequestApproved)

	require.NoError(t, n.Notify(context.Background(), msg))
	assert.Equal(t, "studyhub:notifications:"+msg.RecipientID.String(), pub.channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.payload, &decoded))
	assert.Equal(t, "REQUEST_APPROVED", decoded["kind"])
	assert.Equal(t, msg.GroupID.String(), decoded["group_id"])
}

func TestRedisNotifier_PropagatesPublishError(t *testing.T) {
	n := notification.NewRedisNotifier(&fakePublisher{err: errors.New("conn refused")}, "p")
	assert.Error(t, n.Notify(context.Background(), sample(notification.KindSchedule)))
}

type fakeProducer struct {
	key, value []byte
}

func (f *fakeProducer) Publish(_ context.Context, key, value []byte) error {
	f.key, f.value = key, value
	return nil
}

func TestKafkaNotifier_KeysByRecipient(t *testing.T) {
	prod := &fakeProducer{}
	msg := sample(notification.KindMemberLeft)
	require.NoError(t, notification.NewKafkaNotifier(prod).Notify(context.Background(), msg))

	assert.Equal(t, msg.RecipientID.String(), string(prod.key))
	assert.Contains(t, string(prod.value), `"kind":"MEMBER_LEFT"`)
}
