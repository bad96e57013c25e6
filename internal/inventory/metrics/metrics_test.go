package metrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() failed: %v", err)
	}
	return metrics, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader, name string) (metricdata.Metrics, bool) {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestInitializeMetrics(t *testing.T) {
	metrics, _ := newTestMetrics(t)

	if metrics.ordersCreatedTotal == nil {
		t.Error("ordersCreatedTotal is nil")
	}
	if metrics.orderCreationDuration == nil {
		t.Error("orderCreationDuration is nil")
	}
	if metrics.orderBulkDeletesTotal == nil {
		t.Error("orderBulkDeletesTotal is nil")
	}
}

func TestRecordOrderCreated(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	metrics.RecordOrderCreated(ctx, true)
	metrics.RecordOrderCreated(ctx, true)
	metrics.RecordOrderCreated(ctx, false)

	m, ok := collect(t, reader, "orders_created_total")
	if !ok {
		t.Fatal("orders_created_total metric not found")
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("Expected Sum[int64] data type")
	}

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		status, _ := dp.Attributes.Value(attribute.Key("status"))
		counts[status.AsString()] = dp.Value
	}
	if counts["success"] != 2 || counts["error"] != 1 {
		t.Errorf("expected 2 success and 1 error, got %v", counts)
	}
}

func TestRecordOrderCreationDuration(t *testing.T) {
	metrics, reader := newTestMetrics(t)

	metrics.RecordOrderCreationDuration(context.Background(), 0.25)

	m, ok := collect(t, reader, "order_creation_duration_seconds")
	if !ok {
		t.Fatal("order_creation_duration_seconds metric not found")
	}
	histogram, ok := m.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("Expected Histogram[float64] data type")
	}
	if len(histogram.DataPoints) != 1 || histogram.DataPoints[0].Count != 1 {
		t.Errorf("expected one recorded duration, got %+v", histogram.DataPoints)
	}
}

func TestRecordBulkDelete(t *testing.T) {
	metrics, reader := newTestMetrics(t)
	ctx := context.Background()

	metrics.RecordBulkDelete(ctx, true, true)
	metrics.RecordBulkDelete(ctx, true, false)

	m, ok := collect(t, reader, "order_bulk_deletes_total")
	if !ok {
		t.Fatal("order_bulk_deletes_total metric not found")
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("Expected Sum[int64] data type")
	}
	if len(sum.DataPoints) != 2 {
		t.Errorf("expected 2 data points split by filtered, got %d", len(sum.DataPoints))
	}
}
