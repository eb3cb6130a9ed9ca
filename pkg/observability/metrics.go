package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricConversionsTotal   = "astbridge.conversions.total"
	metricConversionDuration = "astbridge.conversion.duration.seconds"
	metricConversionErrors   = "astbridge.conversion.errors.total"
	metricNodesTotal         = "astbridge.nodes.total"
	metricInflight           = "astbridge.inflight.conversions"

	attrDirection = "direction"
	attrStatus    = "status"

	// StatusOK marks a conversion that produced a tree.
	StatusOK = "ok"
)

// durationBucketBoundaries covers 100µs to 10s; a single document converts in
// well under a second unless it is very large.
var durationBucketBoundaries = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// ConversionMetrics holds the OTel instruments recorded per document
// translation.
type ConversionMetrics struct {
	conversionsTotal   metric.Int64Counter
	conversionDuration metric.Float64Histogram
	conversionErrors   metric.Int64Counter
	nodesTotal         metric.Int64Counter
	inflight           metric.Int64UpDownCounter
}

// NewConversionMetrics creates conversion instruments from the given meter.
func NewConversionMetrics(mt metric.Meter) (*ConversionMetrics, error) {
	total, err := mt.Int64Counter(metricConversionsTotal,
		metric.WithDescription("Total number of document conversions"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricConversionsTotal, err)
	}

	duration, err := mt.Float64Histogram(metricConversionDuration,
		metric.WithDescription("Conversion duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricConversionDuration, err)
	}

	errs, err := mt.Int64Counter(metricConversionErrors,
		metric.WithDescription("Total number of failed conversions by error class"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricConversionErrors, err)
	}

	nodes, err := mt.Int64Counter(metricNodesTotal,
		metric.WithDescription("Total number of nodes read by conversions"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricNodesTotal, err)
	}

	inflight, err := mt.Int64UpDownCounter(metricInflight,
		metric.WithDescription("Number of in-flight conversions"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricInflight, err)
	}

	return &ConversionMetrics{
		conversionsTotal:   total,
		conversionDuration: duration,
		conversionErrors:   errs,
		nodesTotal:         nodes,
		inflight:           inflight,
	}, nil
}

// RecordConversion records a finished conversion. Any status other than
// StatusOK also counts as an error of that class.
func (cm *ConversionMetrics) RecordConversion(
	ctx context.Context, direction, status string, nodes int, duration time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String(attrDirection, direction),
		attribute.String(attrStatus, status),
	)

	cm.conversionsTotal.Add(ctx, 1, attrs)
	cm.conversionDuration.Record(ctx, duration.Seconds(), attrs)
	cm.nodesTotal.Add(ctx, int64(nodes), metric.WithAttributes(attribute.String(attrDirection, direction)))

	if status != StatusOK {
		cm.conversionErrors.Add(ctx, 1, attrs)
	}
}

// TrackInflight increments the in-flight gauge and returns a function to decrement it.
func (cm *ConversionMetrics) TrackInflight(ctx context.Context, direction string) func() {
	attrs := metric.WithAttributes(attribute.String(attrDirection, direction))
	cm.inflight.Add(ctx, 1, attrs)

	return func() {
		cm.inflight.Add(ctx, -1, attrs)
	}
}
