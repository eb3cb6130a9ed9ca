package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/astbridge/pkg/observability"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestContextHandler_InjectsTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewContextHandler(inner, "test-svc", "1.2.3"))

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.InfoContext(ctx, "converted")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", record["trace_id"])
	assert.Equal(t, "0102030405060708", record["span_id"])
	assert.Equal(t, "test-svc", record["service"])
	assert.Equal(t, "1.2.3", record["version"])
}

func TestContextHandler_NoTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewContextHandler(inner, "astbridge", ""))

	logger.InfoContext(context.Background(), "no span")

	record := decodeRecord(t, &buf)
	assert.NotContains(t, record, "trace_id")
	assert.NotContains(t, record, "version")
	assert.Equal(t, "astbridge", record["service"])
}

func TestContextHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewContextHandler(inner, "astbridge", ""))

	logger.WithGroup("convert").InfoContext(context.Background(), "done", slog.String("direction", "to-shift"))

	record := decodeRecord(t, &buf)
	assert.Equal(t, "astbridge", record["service"])

	group, ok := record["convert"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "to-shift", group["direction"])
}

func TestContextHandler_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := slog.New(observability.NewContextHandler(inner, "astbridge", ""))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.With(slog.String("file", "a.json")).Warn("kept")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "a.json", record["file"])
}

func TestContextHandler_AddsFileFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewContextHandler(inner, "astbridge", ""))

	ctx := observability.WithFile(context.Background(), "fixtures/program.json")
	logger.WarnContext(ctx, "translation failed")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "fixtures/program.json", record["file"])

	file, ok := observability.FileFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "fixtures/program.json", file)

	_, ok = observability.FileFromContext(context.Background())
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, want := range tests {
		got, err := observability.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := observability.ParseLevel("loud")
	require.Error(t, err)
}
