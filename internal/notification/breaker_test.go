package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studyhub/internal/notification"
	"studyhub/internal/notification/mocks"
	"studyhub/pkg/platform/circuit"
)

func TestGuarded(t *testing.T) {
	msg := sample(notification.KindSchedule)
	errDown := errors.New("down")

	t.Run("uses primary while healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mocks.NewMockNotifier(ctrl)
		fallback := mocks.NewMockNotifier(ctrl)
		g := notification.NewGuarded(primary, fallback, circuit.New("notify"), discard)

		primary.EXPECT().Notify(gomock.Any(), msg).Return(nil)
		assert.NoError(t, g.Notify(context.Background(), msg))
	})

	t.Run("falls back on failure and skips primary once open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mocks.NewMockNotifier(ctrl)
		fallback := mocks.NewMockNotifier(ctrl)
		breaker := circuit.New("notify", circuit.WithFailureThreshold(2))
		g := notification.NewGuarded(primary, fallback, breaker, discard)

		primary.EXPECT().Notify(gomock.Any(), msg).Return(errDown).Times(2)
		fallback.EXPECT().Notify(gomock.Any(), msg).Return(nil).Times(3)

		for range 3 {
			assert.ErrorIs(t, g.Notify(context.Background(), msg), notification.ErrFellBack)
		}
		assert.True(t, breaker.IsOpen())
	})

	t.Run("fallback failure is not reported as fell back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mocks.NewMockNotifier(ctrl)
		fallback := mocks.NewMockNotifier(ctrl)
		g := notification.NewGuarded(primary, fallback, circuit.New("notify"), discard)

		primary.EXPECT().Notify(gomock.Any(), msg).Return(errDown)
		fallback.EXPECT().Notify(gomock.Any(), msg).Return(errors.New("disk full"))

		err := g.Notify(context.Background(), msg)
		assert.ErrorIs(t, err, errDown)
		assert.NotErrorIs(t, err, notification.ErrFellBack)
	})
}

func TestDispatcher_CountsFallbackSeparately(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockNotifier(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)
	g := notification.NewGuarded(primary, notification.NewLogNotifier(discard), circuit.New("notify"), discard)
	d := notification.NewDispatcher(g, notification.WithLogger(discard), notification.WithRecorder(recorder))

	primary.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable")).Times(3)
	recorder.EXPECT().NotificationFellBack(string(notification.KindRequestApproved)).Times(3)
	recorder.EXPECT().NotificationDelivered(gomock.Any()).Times(0)

	for range 3 {
		require.NoError(t, d.Notify(context.Background(), sample(notification.KindRequestApproved)))
	}
	require.NoError(t, d.Close(context.Background()))
}
