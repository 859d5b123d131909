package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextTrace(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelTrace, FormatText)

	Trace(context.Background(), l, "incoming request", slog.String("path", "/"))

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, "msg=\"incoming request\"")
	assert.Contains(t, out, "path=/")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo, FormatJSON)

	l.Info("used address", slog.String("addr", "127.0.0.1:8080"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "127.0.0.1:8080", rec["addr"])
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo, FormatText)

	Trace(context.Background(), l, "hidden")
	l.Debug("hidden too")

	assert.Empty(t, buf.String())
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestFromContext(t *testing.T) {
	fallback := Nop()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	scoped := New(&bytes.Buffer{}, slog.LevelInfo, FormatText)
	ctx := WithContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}
