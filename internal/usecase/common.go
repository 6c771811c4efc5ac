package usecase

import (
	"context"
	"log"
	"time"

	"insurance_xpto/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("insurance_xpto/usecase")

func utcNow() time.Time {
	return time.Now().UTC()
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// publish emits an event once the data is committed. Publishing is best
// effort: the workflow result does not depend on it.
func publish(ctx context.Context, p interfaces.IEventPublisher, eventType, key string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, eventType, key, payload); err != nil {
		log.Printf("[events] publish failed event=%s key=%s err=%v", eventType, key, err)
	}
}
