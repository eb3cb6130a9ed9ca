package bridge_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/convert"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/observability"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

func decode(t *testing.T, doc string) *bridge.Document {
	t.Helper()

	d, err := bridge.Decode([]byte(doc), "")
	require.NoError(t, err)

	return d
}

func TestTranslateBothDirections(t *testing.T) {
	t.Parallel()

	tr := bridge.NewTranslator()

	out, err := tr.Translate(context.Background(), decode(t, estreeProgram))
	require.NoError(t, err)
	assert.Equal(t, bridge.Shift, out.Taxonomy)

	data, err := out.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, shiftScript, string(data))

	back, err := tr.Translate(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, bridge.ESTree, back.Taxonomy)

	data, err = back.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, estreeProgram, string(data))
}

func TestTranslateCookedTemplates(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"type":"Script","directives":[],"statements":[{"type":"ExpressionStatement",
	  "expression":{"type":"TemplateExpression","tag":null,"elements":[{"type":"TemplateElement","rawValue":"a\\tb"}]}}]}`)

	plain, err := bridge.NewTranslator().Translate(context.Background(), doc)
	require.NoError(t, err)

	cooked, err := bridge.NewTranslator(bridge.WithCookedTemplates(true)).Translate(context.Background(), doc)
	require.NoError(t, err)

	quasiOf := func(d *bridge.Document) estree.TemplateValue {
		program, ok := d.Root.(*estree.Program)
		require.True(t, ok)

		stmt, ok := program.Body[0].(*estree.ExpressionStatement)
		require.True(t, ok)

		literal, ok := stmt.Expression.(*estree.TemplateLiteral)
		require.True(t, ok)

		return literal.Quasis[0].Value
	}

	assert.Equal(t, estree.TemplateValue{Raw: `a\tb`, Cooked: `a\tb`}, quasiOf(plain))
	assert.Equal(t, estree.TemplateValue{Raw: `a\tb`, Cooked: "a\tb"}, quasiOf(cooked))
}

func TestTranslateReportsTelemetry(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := observability.NewConversionMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test"))
	require.NoError(t, err)

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))

	var logs bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := bridge.NewTranslator(bridge.WithMetrics(metrics), bridge.WithTracer(tp.Tracer("test")), bridge.WithLogger(logger))

	_, err = tr.Translate(context.Background(), decode(t, estreeProgram))
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), decode(t, `{"type":"Program","sourceType":"script","body":[
	  {"type":"ExpressionStatement","expression":{"type":"Frobnicate"}}]}`))
	require.ErrorIs(t, err, convert.ErrUnrecognizedKind)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	statuses := map[string]int64{}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "astbridge.conversions.total" {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			for _, dp := range sum.DataPoints {
				status, _ := dp.Attributes.Value("status")
				statuses[status.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{"ok": 1, "unrecognized_kind": 1}, statuses)

	recorded := spans.GetSpans()
	require.Len(t, recorded, 2)
	assert.Equal(t, "astbridge.translate", recorded[0].Name)

	assert.Contains(t, logs.String(), `"msg":"translated"`)
	assert.Contains(t, logs.String(), `"msg":"translation failed"`)
	assert.Contains(t, logs.String(), `"status":"unrecognized_kind"`)
}

func spanAttrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		attrs[kv.Key] = kv.Value
	}

	return attrs
}

func TestTranslateFileRecordsDocumentSpan(t *testing.T) {
	t.Parallel()

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(
		observability.NewRedactingProcessor(sdktrace.NewSimpleSpanProcessor(spans), nil),
	))

	var logs bytes.Buffer

	logger := slog.New(observability.NewContextHandler(
		slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}), "astbridge", ""))

	tr := bridge.NewTranslator(bridge.WithTracer(tp.Tracer("test")), bridge.WithLogger(logger))

	out, err := tr.TranslateFile(context.Background(), "/work/src/program.json", []byte(estreeProgram), "")
	require.NoError(t, err)
	assert.Equal(t, bridge.Shift, out.Taxonomy)

	recorded := spans.GetSpans()
	require.Len(t, recorded, 2)

	translate, document := recorded[0], recorded[1]
	assert.Equal(t, "astbridge.translate", translate.Name)
	assert.Equal(t, "astbridge.document", document.Name)
	assert.Equal(t, document.SpanContext.SpanID(), translate.Parent.SpanID())

	docAttrs := spanAttrs(document)
	assert.Equal(t, "program.json", docAttrs[observability.AttrFilePath].AsString())
	assert.Equal(t, int64(len(estreeProgram)), docAttrs[observability.AttrFileBytes].AsInt64())
	assert.Equal(t, string(bridge.ESTree), docAttrs[observability.AttrTaxonomy].AsString())

	trAttrs := spanAttrs(translate)
	assert.Equal(t, string(convert.ToShiftDirection), trAttrs[observability.AttrDirection].AsString())
	assert.Equal(t, observability.StatusOK, trAttrs[observability.AttrStatus].AsString())
	assert.Positive(t, trAttrs[observability.AttrNodes].AsInt64())

	assert.Contains(t, logs.String(), `"file":"/work/src/program.json"`)
}

func TestTranslateFileDecodeFailure(t *testing.T) {
	t.Parallel()

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))

	tr := bridge.NewTranslator(bridge.WithTracer(tp.Tracer("test")))

	_, err := tr.TranslateFile(context.Background(), "broken.json", []byte(`{"body":[]}`), "")
	require.Error(t, err)

	recorded := spans.GetSpans()
	require.Len(t, recorded, 1)
	assert.Equal(t, "astbridge.document", recorded[0].Name)
	assert.Equal(t, "codec", recorded[0].Status.Description)
	assert.NotContains(t, spanAttrs(recorded[0]), attribute.Key(observability.AttrTaxonomy))
}

func TestTranslateWrongTaxonomy(t *testing.T) {
	t.Parallel()

	doc := &bridge.Document{Taxonomy: bridge.ESTree, Root: &shift.Script{}}

	_, err := bridge.NewTranslator().Translate(context.Background(), doc)
	require.ErrorIs(t, err, bridge.ErrWrongTaxonomy)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, observability.StatusOK, bridge.Status(nil))
	assert.Equal(t, "unrecognized_kind", bridge.Status(&convert.UnrecognizedKindError{Kind: "X"}))
	assert.Equal(t, "structural_violation", bridge.Status(&convert.StructuralError{Kind: "X"}))
	assert.Equal(t, "error", bridge.Status(bridge.ErrWrongTaxonomy))
}
