package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	logKeyTraceID = "trace_id"
	logKeySpanID  = "span_id"
	logKeyFile    = "file"
	logKeyService = "service"
	logKeyVersion = "version"
)

type fileKey struct{}

// WithFile returns a context whose log records name the document file being
// processed.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey{}, file)
}

// FileFromContext returns the file set by WithFile.
func FileFromContext(ctx context.Context) (string, bool) {
	file, ok := ctx.Value(fileKey{}).(string)

	return file, ok
}

// ContextHandler is an [slog.Handler] that adds the active span and the
// current document file from the record's context. The service name and
// version are attached once, ahead of any group.
type ContextHandler struct {
	inner slog.Handler
}

// NewContextHandler wraps inner. An empty version is omitted.
func NewContextHandler(inner slog.Handler, service, version string) *ContextHandler {
	meta := []slog.Attr{slog.String(logKeyService, service)}
	if version != "" {
		meta = append(meta, slog.String(logKeyVersion, version))
	}

	return &ContextHandler{inner: inner.WithAttrs(meta)}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if file, ok := FileFromContext(ctx); ok {
		record.AddAttrs(slog.String(logKeyFile, file))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String(logKeyTraceID, sc.TraceID().String()),
			slog.String(logKeySpanID, sc.SpanID().String()),
		)
	}

	return h.inner.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}
