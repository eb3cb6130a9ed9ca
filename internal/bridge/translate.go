package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
	"github.com/Sumatoshi-tech/astbridge/pkg/convert"
	"github.com/Sumatoshi-tech/astbridge/pkg/cook"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/observability"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

const (
	spanTranslate = "astbridge.translate"
	spanDocument  = "astbridge.document"
)

// Error classes reported as conversion status.
const (
	statusUnrecognized = "unrecognized_kind"
	statusStructural   = "structural_violation"
	statusCodec        = "codec"
	statusError        = "error"
)

// ErrWrongTaxonomy means a document was handed to the wrong direction.
var ErrWrongTaxonomy = errors.New("document root does not belong to the taxonomy")

// Translator converts documents in either direction and reports each
// conversion to the configured tracer, metrics and logger.
type Translator struct {
	toShift  *convert.ShiftConverter
	toESTree *convert.ESTreeConverter
	tracer   trace.Tracer
	metrics  *observability.ConversionMetrics
	logger   *slog.Logger
}

// Option configures a Translator.
type Option func(*translatorOptions)

type translatorOptions struct {
	cook    bool
	tracer  trace.Tracer
	metrics *observability.ConversionMetrics
	logger  *slog.Logger
}

// WithCookedTemplates makes Shift to ESTree translation compute template
// cooked values instead of copying the raw text.
func WithCookedTemplates(enabled bool) Option {
	return func(o *translatorOptions) { o.cook = enabled }
}

// WithTracer records a span per translation.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *translatorOptions) { o.tracer = tracer }
}

// WithMetrics records conversion metrics.
func WithMetrics(metrics *observability.ConversionMetrics) Option {
	return func(o *translatorOptions) { o.metrics = metrics }
}

// WithLogger logs each translation at debug level and failures at warn.
func WithLogger(logger *slog.Logger) Option {
	return func(o *translatorOptions) { o.logger = logger }
}

// NewTranslator builds a Translator.
func NewTranslator(opts ...Option) *Translator {
	o := translatorOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	var estreeOpts []convert.Option
	if o.cook {
		estreeOpts = append(estreeOpts, convert.WithTemplateCooker(cook.Cook))
	}

	if o.tracer == nil {
		o.tracer = nooptrace.NewTracerProvider().Tracer("")
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Translator{
		toShift:  convert.NewShiftConverter(),
		toESTree: convert.NewESTreeConverter(estreeOpts...),
		tracer:   o.tracer,
		metrics:  o.metrics,
		logger:   o.logger,
	}
}

// Translate converts doc into the other taxonomy. The input is not modified.
func (t *Translator) Translate(ctx context.Context, doc *Document) (*Document, error) {
	direction := directionOf(doc.Taxonomy)

	ctx, span := t.tracer.Start(ctx, spanTranslate,
		trace.WithAttributes(attribute.String(observability.AttrDirection, string(direction))),
	)
	defer span.End()

	if t.metrics != nil {
		done := t.metrics.TrackInflight(ctx, string(direction))
		defer done()
	}

	start := time.Now()
	nodes := countNodes(doc.Root)

	out, err := t.convert(doc)

	status := Status(err)
	duration := time.Since(start)

	if t.metrics != nil {
		t.metrics.RecordConversion(ctx, string(direction), status, nodes, duration)
	}

	span.SetAttributes(
		attribute.Int(observability.AttrNodes, nodes),
		attribute.String(observability.AttrStatus, status),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
		t.logger.WarnContext(ctx, "translation failed",
			"direction", direction, "status", status, "error", err)

		return nil, fmt.Errorf("translate %s: %w", direction, err)
	}

	t.logger.DebugContext(ctx, "translated",
		"direction", direction, "nodes", nodes, "duration", duration)

	return out, nil
}

// TranslateFile decodes data read from file and translates it. The file is
// recorded on a document span that parents the translation span, and on the
// context handed to the logger. An empty from detects the taxonomy.
func (t *Translator) TranslateFile(ctx context.Context, file string, data []byte, from Taxonomy) (*Document, error) {
	ctx = observability.WithFile(ctx, file)

	ctx, span := t.tracer.Start(ctx, spanDocument,
		trace.WithAttributes(
			attribute.String(observability.AttrFilePath, file),
			attribute.Int(observability.AttrFileBytes, len(data)),
		),
	)
	defer span.End()

	doc, err := Decode(data, from)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Status(err))
		t.logger.WarnContext(ctx, "decode failed", "error", err)

		return nil, err
	}

	span.SetAttributes(attribute.String(observability.AttrTaxonomy, string(doc.Taxonomy)))

	out, err := t.Translate(ctx, doc)
	if err != nil {
		span.SetStatus(codes.Error, Status(err))

		return nil, err
	}

	return out, nil
}

func (t *Translator) convert(doc *Document) (*Document, error) {
	switch doc.Taxonomy {
	case ESTree:
		root, ok := doc.Root.(estree.Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not estree", ErrWrongTaxonomy, doc.Root.Type())
		}

		out, err := t.toShift.Convert(root)
		if err != nil {
			return nil, err
		}

		return &Document{Taxonomy: Shift, Root: out}, nil
	case Shift:
		root, ok := doc.Root.(shift.Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not shift", ErrWrongTaxonomy, doc.Root.Type())
		}

		out, err := t.toESTree.Convert(root)
		if err != nil {
			return nil, err
		}

		return &Document{Taxonomy: ESTree, Root: out}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTaxonomy, doc.Taxonomy)
	}
}

// Status classifies the outcome of a conversion for metrics and logs.
func Status(err error) string {
	switch {
	case err == nil:
		return observability.StatusOK
	case errors.Is(err, convert.ErrUnrecognizedKind):
		return statusUnrecognized
	case errors.Is(err, convert.ErrStructuralViolation):
		return statusStructural
	case errors.Is(err, astjson.ErrMalformedDocument), errors.Is(err, astjson.ErrKindMismatch):
		return statusCodec
	default:
		return statusError
	}
}

func directionOf(from Taxonomy) convert.Direction {
	if from == Shift {
		return convert.ToESTreeDirection
	}

	return convert.ToShiftDirection
}

func countNodes(root astjson.Node) int {
	var n int

	astjson.Walk(root, func(astjson.Node) bool {
		n++

		return true
	})

	return n
}
