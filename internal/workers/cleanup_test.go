package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/mock"
)

func TestCleanupWorker_SweepsUntilCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	files.EXPECT().
		CleanupExpired(gomock.Any(), time.Hour).
		DoAndReturn(func(context.Context, time.Duration) (int, error) {
			calls++
			if calls == 3 {
				cancel()
			}
			return 1, nil
		}).
		MinTimes(3)

	w := NewCleanupWorker(files, config.Workers{CleanupInterval: 5 * time.Millisecond, FileTTL: time.Hour}, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup worker did not stop")
	}
}

func TestCleanupWorker_ErrorDoesNotStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		files.EXPECT().CleanupExpired(gomock.Any(), gomock.Any()).Return(0, errors.New("db down")),
		files.EXPECT().CleanupExpired(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, time.Duration) (int, error) {
				cancel()
				return 0, nil
			}),
	)

	w := NewCleanupWorker(files, config.Workers{CleanupInterval: 5 * time.Millisecond, FileTTL: time.Minute}, logger.Nop())
	w.Run(ctx)
}

func TestCleanupWorker_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileService(ctrl)

	// no expectations: a disabled worker never touches the service
	w := NewCleanupWorker(files, config.Workers{}, logger.Nop())
	w.Run(context.Background())

	assert.NotNil(t, w)
}
