package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.ObserveOperation("join_group", "ok", time.Now())
	m.ObserveOperation("join_group", "group_full", time.Now())
	m.ObserveOperation("join_group", "group_full", time.Now())
	m.IncrementGroupFull("join_group")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("join_group", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("join_group", "group_full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdmissionsRejected.WithLabelValues("join_group")))
}

func TestNotificationOutcomes(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.NotificationDelivered("SCHEDULE")
	m.NotificationFailed("SCHEDULE")
	m.NotificationDropped("MEMBER_JOINED")
	m.NotificationFellBack("SCHEDULE")
	m.NotificationFellBack("SCHEDULE")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("SCHEDULE", "delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("SCHEDULE", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("MEMBER_JOINED", "dropped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Notifications.WithLabelValues("SCHEDULE", "fallback")))
}
