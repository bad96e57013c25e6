package adapters

import (
	"context"
	"time"

	"github.com/dejobratic/inventory/internal/database"
	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// observe runs fn inside a span named spanName and records its duration
// against entity/operation in the database metrics.
func observe(ctx context.Context, metrics *database.Metrics, spanName, entity, operation string, attrs []attribute.KeyValue, fn func(context.Context, trace.Span) error) error {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()

	telemetry.AddSpanAttributes(span, append(attrs, attribute.String("operation", operation))...)

	start := time.Now()
	err := fn(ctx, span)
	metrics.RecordQuery(ctx, entity, operation, time.Since(start).Seconds(), err)

	telemetry.FinishSpan(span, err)
	return err
}

func filterAttributes(filter domain.OrderFilter) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if month, ok := filter.Month.Get(); ok {
		attrs = append(attrs, attribute.Int("filter.month", month))
	}
	if year, ok := filter.Year.Get(); ok {
		attrs = append(attrs, attribute.Int("filter.year", year))
	}
	if status, ok := filter.Status.Get(); ok {
		attrs = append(attrs, attribute.String("filter.status", status.String()))
	}
	if productID, ok := filter.ProductID.Get(); ok {
		attrs = append(attrs, attribute.Int64("filter.product_id", productID))
	}
	return attrs
}
