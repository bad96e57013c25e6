package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/metrics"
	"github.com/dejobratic/inventory/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableCommandHandler struct {
	handler CommandHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableCommandHandler(handler CommandHandler, logger *slog.Logger, metrics *metrics.Metrics) *ObservableCommandHandler {
	return &ObservableCommandHandler{
		handler: handler,
		logger:  logger,
		metrics: metrics,
	}
}

func (o *ObservableCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "CreateOrderCommand.Handle")
	defer span.End()

	start := time.Now()
	var success bool
	defer func() {
		o.metrics.RecordOrderCreationDuration(ctx, time.Since(start).Seconds())
		o.metrics.RecordOrderCreated(ctx, success)
	}()

	o.logger.InfoContext(ctx, "creating order",
		"product_id", cmd.ProductID,
		"status", cmd.Status,
	)

	order, err := o.handler.Handle(ctx, cmd)
	if err != nil {
		telemetry.FinishSpan(span, err)
		o.logger.ErrorContext(ctx, "failed to create order",
			"error", err,
			"product_id", cmd.ProductID,
		)
		return nil, err
	}

	telemetry.AddSpanAttributes(span,
		attribute.Int64("order.id", order.ID),
		attribute.Int64("order.product_id", order.ProductID),
		attribute.String("order.status", order.Status.String()),
	)

	o.logger.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"product_id", order.ProductID,
	)

	success = true
	telemetry.FinishSpan(span, nil)

	return order, nil
}
