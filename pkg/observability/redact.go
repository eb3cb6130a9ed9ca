package observability

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Span attribute keys recorded by astbridge.
const (
	AttrDirection = "convert.direction"
	AttrNodes     = "convert.nodes"
	AttrStatus    = "convert.status"
	AttrBatchSize = "batch.size"
	AttrFilePath  = "file.path"
	AttrFileBytes = "file.bytes"
	AttrTaxonomy  = "file.taxonomy"
)

// maxAttrValueLen bounds exported string values. Anything longer is treated
// as document text and dropped.
const maxAttrValueLen = 256

type attrPolicy uint8

const (
	keepValue attrPolicy = iota
	// baseName keeps only the last path element.
	baseName
)

var spanAttrPolicies = map[attribute.Key]attrPolicy{
	AttrDirection: keepValue,
	AttrNodes:     keepValue,
	AttrStatus:    keepValue,
	AttrBatchSize: keepValue,
	AttrFilePath:  baseName,
	AttrFileBytes: keepValue,
	AttrTaxonomy:  keepValue,
}

// redactingProcessor rewrites span attributes before the delegate exports
// them. Keys outside spanAttrPolicies never leave the process.
type redactingProcessor struct {
	delegate sdktrace.SpanProcessor
	logger   *slog.Logger
	reported sync.Map
}

// NewRedactingProcessor wraps delegate so that exported spans carry only the
// astbridge attribute keys, with file paths reduced to their base name and
// oversized string values removed. Each dropped key is logged once at debug
// level when logger is non-nil.
func NewRedactingProcessor(delegate sdktrace.SpanProcessor, logger *slog.Logger) sdktrace.SpanProcessor {
	return &redactingProcessor{delegate: delegate, logger: logger}
}

func (p *redactingProcessor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	p.delegate.OnStart(parent, s)
}

func (p *redactingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.delegate.OnEnd(&redactedSpan{ReadOnlySpan: s, attrs: p.redact(s.Attributes())})
}

func (p *redactingProcessor) Shutdown(ctx context.Context) error {
	return p.delegate.Shutdown(ctx)
}

func (p *redactingProcessor) ForceFlush(ctx context.Context) error {
	return p.delegate.ForceFlush(ctx)
}

func (p *redactingProcessor) redact(attrs []attribute.KeyValue) []attribute.KeyValue {
	kept := make([]attribute.KeyValue, 0, len(attrs))

	for _, kv := range attrs {
		policy, known := spanAttrPolicies[kv.Key]

		switch {
		case !known:
			p.dropped(kv.Key, "unlisted key")
		case kv.Value.Type() == attribute.STRING && len(kv.Value.AsString()) > maxAttrValueLen:
			p.dropped(kv.Key, "value too long")
		case policy == baseName:
			kept = append(kept, kv.Key.String(filepath.Base(kv.Value.AsString())))
		default:
			kept = append(kept, kv)
		}
	}

	return kept
}

func (p *redactingProcessor) dropped(key attribute.Key, reason string) {
	if p.logger == nil {
		return
	}

	if _, seen := p.reported.LoadOrStore(key, struct{}{}); seen {
		return
	}

	p.logger.Debug("span attribute dropped", "key", string(key), "reason", reason)
}

// redactedSpan serves the precomputed attribute list in place of the
// recorded one.
type redactedSpan struct {
	sdktrace.ReadOnlySpan

	attrs []attribute.KeyValue
}

func (s *redactedSpan) Attributes() []attribute.KeyValue {
	return s.attrs
}
