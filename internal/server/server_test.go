package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/handler"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/mock"
	"github.com/MKhiriev/go-file-crypt/internal/service"
	"github.com/MKhiriev/go-file-crypt/models"
)

// fakeRunner records that it was started and stopped.
type fakeRunner struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (f *fakeRunner) Run(ctx context.Context) {
	f.started.Store(true)
	<-ctx.Done()
	f.stopped.Store(true)
}

func testHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:    config.App{Mode: "key", Version: "1.0.0", MaxUploadSize: 1024},
		Server: config.Server{HTTPAddress: "127.0.0.1:0"},
	}
	crypt := mock.NewMockCryptService(gomock.NewController(t))
	crypt.EXPECT().Mode().Return(models.ModeKey).AnyTimes()

	h, err := handler.NewHandlers(&service.Services{CryptService: crypt}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

// ─────────────────────────────────────────────────────────────────────────────

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(testHandlers(t), nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_ServesUntilCanceled(t *testing.T) {
	runner := &fakeRunner{}
	srv, err := NewServer(testHandlers(t), runner, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/no-such-route")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Eventually(t, runner.started.Load, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.True(t, runner.stopped.Load(), "background runner is stopped with the server")

	_, err = http.Get("http://" + ln.Addr().String() + "/")
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestRun_ServeFailureStopsBackground(t *testing.T) {
	runner := &fakeRunner{}
	srv, err := NewServer(testHandlers(t), runner, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = srv.(*server).run(context.Background(), ln)

	assert.Error(t, err)
	assert.True(t, runner.stopped.Load())
}
