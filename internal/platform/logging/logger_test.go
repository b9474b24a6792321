package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	var out map[string]any
	require.NoError(t, sonic.UnmarshalString(line, &out))
	return out
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf}).With("service", "fantasy-formula-api")

	logger.Warn("lineup rejected", "race_id", int64(3), "error", errors.New("budget exceeded"))

	entry := decodeLine(t, &buf)
	require.Equal(t, "WARN", entry["level"])
	require.Equal(t, "lineup rejected", entry["msg"])
	require.Equal(t, "fantasy-formula-api", entry["service"])
	require.EqualValues(t, 3, entry["race_id"])
	require.Equal(t, "budget exceeded", entry["error"])
	require.Contains(t, entry["caller"], "logger_test.go")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("standings computed")
	logger.Debug("cache hit")
	require.Zero(t, buf.Len())

	logger.Error("standings failed")
	require.NotZero(t, buf.Len())
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf})

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "results replaced", "race_id", int64(1))

	entry := decodeLine(t, &buf)
	require.Equal(t, traceID.String(), entry["trace_id"])
	require.Equal(t, spanID.String(), entry["span_id"])
}

func TestLogger_OddArgsAndNil(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("dangling", "only_key")
	entry := decodeLine(t, &buf)
	require.Contains(t, entry, "only_key")

	var nilLogger *Logger
	require.NotPanics(t, func() { nilLogger.Info("falls back to default") })
	require.NoError(t, nilLogger.Sync())
}

func TestLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatConsole, Output: &buf})

	logger.Info("http server starting", "addr", ":8080")

	line := buf.String()
	require.Contains(t, line, "INFO")
	require.Contains(t, line, "http server starting")
	require.False(t, strings.HasPrefix(strings.TrimSpace(line), "{"))
}
