package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.key+"="+tc.val)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "store", "kind", "memory").Info(context.Background(), "ready", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=ready", "module=store", "kind=memory", "k=v"} {
		assert.Contains(t, out, s)
	}
}

func TestNewJSONLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, "warn")
	ctx := context.Background()

	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "n", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"shown"`)
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	var l Logger = NopLogger{}
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	assert.NotNil(t, l.With("a", 1))
}
