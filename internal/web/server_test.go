package web

import (
	"context"
	"testing"
	"time"

	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/web/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newRunServer(t *testing.T, addr string) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HTTPAddr = addr
	cfg.ShutdownTimeout = time.Second

	s, err := NewServer(cfg, logging.Nop(), &fakeOperator{})
	require.NoError(t, err)
	return s
}

func TestRun_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newRunServer(t, "127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	assert.NoError(t, s.Run(ctx))
}

func TestRun_BadAddress(t *testing.T) {
	s := newRunServer(t, "256.0.0.1:-1")
	assert.Error(t, s.Run(context.Background()))
}

func TestTemplateFuncs(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	funcs := templateFuncs(loc)

	formatDate := funcs["formatDate"].(func(string) string)
	assert.Equal(t, "2025/03/01", formatDate("2025-03-01"))
	assert.Equal(t, "2025/03/02", formatDate("2025-03-01T20:00:00Z"))
	assert.Equal(t, "-", formatDate("-"))

	formatDateTime := funcs["formatDateTime"].(func(string) string)
	assert.Equal(t, "2025/03/02 05:00", formatDateTime("2025-03-01T20:00:00Z"))

	formatMonth := funcs["formatMonth"].(func(string) string)
	assert.Equal(t, "2025/09", formatMonth("2025-09"))

	n := int64(12)
	w := 450.5
	var missing *string
	assert.Equal(t, "12", text(&n))
	assert.Equal(t, "450.5", text(&w))
	assert.Equal(t, "-", text(missing))
	assert.Equal(t, "-", text(nil))
}
