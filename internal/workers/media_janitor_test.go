package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestJanitor(t *testing.T, ctrl *gomock.Controller, attempts int) (*MediaJanitor, *mock.MockMediaStorage) {
	t.Helper()

	media := mock.NewMockMediaStorage(ctrl)
	j := NewMediaJanitor(media, config.Workers{
		MediaCleanupInterval:    10 * time.Millisecond,
		MediaCleanupMaxAttempts: attempts,
	}, logger.Nop())

	return j, media
}

func TestMediaJanitor_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, _ := newTestJanitor(t, ctrl, 3)

	j.Enqueue("")
	assert.Equal(t, 0, j.Pending())

	j.Enqueue("a")
	j.Enqueue("a")
	j.Enqueue("b")
	assert.Equal(t, 2, j.Pending())
}

func TestMediaJanitor_Sweep_DestroysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, media := newTestJanitor(t, ctrl, 3)
	ctx := context.Background()

	media.EXPECT().Destroy(gomock.Any(), "a").Return(nil)
	media.EXPECT().Destroy(gomock.Any(), "b").Return(nil)

	j.Enqueue("a")
	j.Enqueue("b")
	j.sweep(ctx)

	assert.Equal(t, 0, j.Pending())
}

func TestMediaJanitor_Sweep_RetriesThenGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, media := newTestJanitor(t, ctrl, 2)
	ctx := context.Background()

	media.EXPECT().Destroy(gomock.Any(), "a").Return(errors.New("timeout")).Times(2)

	j.Enqueue("a")

	j.sweep(ctx)
	assert.Equal(t, 1, j.Pending())

	j.sweep(ctx)
	assert.Equal(t, 0, j.Pending())

	// dropped: a third sweep must not call Destroy again
	j.sweep(ctx)
}

func TestMediaJanitor_Sweep_RecoversAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, media := newTestJanitor(t, ctrl, 5)
	ctx := context.Background()

	gomock.InOrder(
		media.EXPECT().Destroy(gomock.Any(), "a").Return(errors.New("timeout")),
		media.EXPECT().Destroy(gomock.Any(), "a").Return(nil),
	)

	j.Enqueue("a")
	j.sweep(ctx)
	j.sweep(ctx)

	assert.Equal(t, 0, j.Pending())
}

func TestMediaJanitor_Run_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, media := newTestJanitor(t, ctrl, 3)

	done := make(chan struct{})
	media.EXPECT().Destroy(gomock.Any(), "a").DoAndReturn(func(context.Context, string) error {
		close(done)
		return nil
	})

	j.Enqueue("a")
	j.Run(context.Background())
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep in time")
	}

	assert.Eventually(t, func() bool { return j.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMediaJanitor_Stop_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j, _ := newTestJanitor(t, ctrl, 3)

	j.Stop()
	j.Run(context.Background())
	j.Stop()
	j.Stop()
}

func TestNewMediaJanitor_Defaults(t *testing.T) {
	j := NewMediaJanitor(nil, config.Workers{}, logger.Nop())

	assert.Equal(t, config.DefaultMediaCleanupInterval, j.interval)
	assert.Equal(t, config.DefaultMediaCleanupAttempts, j.maxAttempts)
}
