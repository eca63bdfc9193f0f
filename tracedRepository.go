package ddd

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/dddkit/ddd-go"

// TracedRepository decorates a Repository with an OpenTelemetry span per
// operation.
type TracedRepository[K comparable, T AggregateRoot[K]] struct {
	repository Repository[K, T]
	tracer     trace.Tracer
}

// NewTracedRepository decorates repository with the module's tracer.
func NewTracedRepository[K comparable, T AggregateRoot[K]](repository Repository[K, T]) *TracedRepository[K, T] {
	return &TracedRepository[K, T]{
		repository: repository,
		tracer:     otel.Tracer(instrumentationName),
	}
}

// GetByID traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) GetByID(ctx context.Context, id K) (T, bool, error) {
	ctx, span := r.tracer.Start(ctx, "repository.get_by_id",
		trace.WithAttributes(attribute.String("aggregate.id", fmt.Sprint(id))))
	defer span.End()

	aggregate, ok, err := r.repository.GetByID(ctx, id)
	span.SetAttributes(attribute.Bool("aggregate.found", ok))
	recordError(span, err)
	return aggregate, ok, err
}

// List traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) List(ctx context.Context, skip, take int) ([]T, error) {
	ctx, span := r.tracer.Start(ctx, "repository.list",
		trace.WithAttributes(
			attribute.Int("page.skip", skip),
			attribute.Int("page.take", take),
		))
	defer span.End()

	aggregates, err := r.repository.List(ctx, skip, take)
	span.SetAttributes(attribute.Int("page.count", len(aggregates)))
	recordError(span, err)
	return aggregates, err
}

// Count traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) Count(ctx context.Context) (int, error) {
	ctx, span := r.tracer.Start(ctx, "repository.count")
	defer span.End()

	n, err := r.repository.Count(ctx)
	recordError(span, err)
	return n, err
}

// Add traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) Add(ctx context.Context, aggregate T) (T, error) {
	ctx, span := r.tracer.Start(ctx, "repository.add",
		trace.WithAttributes(attribute.String("aggregate.id", fmt.Sprint(aggregate.ID()))))
	defer span.End()

	added, err := r.repository.Add(ctx, aggregate)
	recordError(span, err)
	return added, err
}

// Update traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) Update(ctx context.Context, aggregate T) (T, error) {
	ctx, span := r.tracer.Start(ctx, "repository.update",
		trace.WithAttributes(attribute.String("aggregate.id", fmt.Sprint(aggregate.ID()))))
	defer span.End()

	updated, err := r.repository.Update(ctx, aggregate)
	recordError(span, err)
	return updated, err
}

// Delete traces and delegates to the underlying repository.
func (r *TracedRepository[K, T]) Delete(ctx context.Context, aggregate T) error {
	ctx, span := r.tracer.Start(ctx, "repository.delete",
		trace.WithAttributes(attribute.String("aggregate.id", fmt.Sprint(aggregate.ID()))))
	defer span.End()

	err := r.repository.Delete(ctx, aggregate)
	recordError(span, err)
	return err
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
