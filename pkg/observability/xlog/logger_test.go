package xlog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

func newBufferLogger(t *testing.T, b *xlog.Builder) (xlog.LoggerWithLevel, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, cleanup, err := b.SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)
	return logger, &buf
}

func TestLogger_Levels(t *testing.T) {
	ctx := context.Background()
	logger, buf := newBufferLogger(t, xlog.New().SetLevel(xlog.LevelWarn))

	logger.Debug(ctx, "debug-msg")
	logger.Info(ctx, "info-msg")
	logger.Warn(ctx, "warn-msg")
	logger.Error(ctx, "error-msg", xlog.Err(errors.New("boom")))

	out := buf.String()
	assert.NotContains(t, out, "debug-msg")
	assert.NotContains(t, out, "info-msg")
	assert.Contains(t, out, "level=WARN msg=warn-msg")
	assert.Contains(t, out, "level=ERROR msg=error-msg error=boom")
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	ctx := context.Background()
	logger, buf := newBufferLogger(t, xlog.New())
	child := logger.With(xlog.Component("batch")).WithGroup("line")

	child.Debug(ctx, "hidden", slog.Int("no", 1))
	assert.Empty(t, buf.String())

	logger.SetLevel(xlog.LevelDebug)
	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	child.Debug(ctx, "visible", slog.Int("no", 2))

	assert.Contains(t, buf.String(), "component=batch")
	assert.Contains(t, buf.String(), "line.no=2")
}

func TestLogger_EmptyWithIsSelf(t *testing.T) {
	logger, _ := newBufferLogger(t, xlog.New())
	assert.Same(t, logger, logger.With())
	assert.Same(t, logger, logger.WithGroup(""))
}

func TestLogger_AddSource(t *testing.T) {
	logger, buf := newBufferLogger(t, xlog.New().SetAddSource(true))
	logger.Info(context.Background(), "where")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestLogger_Attrs(t *testing.T) {
	logger, buf := newBufferLogger(t, xlog.New())
	logger.Info(context.Background(), "summary",
		xlog.Count(3),
		xlog.Operation("check"),
		xlog.Duration(1500*time.Millisecond),
		xlog.Err(nil),
	)
	out := buf.String()
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "operation=check")
	assert.Contains(t, out, "duration=1.5s")
	assert.NotContains(t, out, "error=")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) {
			got = append(got, err)
			panic("must not escape")
		}).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	assert.NotPanics(t, func() {
		logger.Info(context.Background(), "a")
		logger.Info(context.Background(), "b")
	})
	require.Len(t, got, 2)
	assert.True(t, strings.Contains(got[0].Error(), "disk full"))
}
