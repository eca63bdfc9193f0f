package ddd

import (
	"context"
	"time"
)

// LoggingRepository decorates a Repository with structured logging of every
// operation: reads at debug level, mutations at info, failures at error.
type LoggingRepository[K comparable, T AggregateRoot[K]] struct {
	repository Repository[K, T]
	logger     *Logger
}

// NewLoggingRepository decorates repository with logger.
func NewLoggingRepository[K comparable, T AggregateRoot[K]](repository Repository[K, T], logger *Logger) *LoggingRepository[K, T] {
	return &LoggingRepository[K, T]{repository: repository, logger: logger}
}

// GetByID delegates to the underlying repository.
func (r *LoggingRepository[K, T]) GetByID(ctx context.Context, id K) (T, bool, error) {
	start := time.Now()
	aggregate, ok, err := r.repository.GetByID(ctx, id)
	r.observe("repository get", err, "id", id, "found", ok, "duration", time.Since(start))
	return aggregate, ok, err
}

// List delegates to the underlying repository.
func (r *LoggingRepository[K, T]) List(ctx context.Context, skip, take int) ([]T, error) {
	start := time.Now()
	aggregates, err := r.repository.List(ctx, skip, take)
	r.observe("repository list", err, "skip", skip, "take", take, "count", len(aggregates), "duration", time.Since(start))
	return aggregates, err
}

// Count delegates to the underlying repository.
func (r *LoggingRepository[K, T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	n, err := r.repository.Count(ctx)
	r.observe("repository count", err, "count", n, "duration", time.Since(start))
	return n, err
}

// Add logs and delegates to the underlying repository.
func (r *LoggingRepository[K, T]) Add(ctx context.Context, aggregate T) (T, error) {
	start := time.Now()
	added, err := r.repository.Add(ctx, aggregate)
	r.mutation("repository add", err, "id", aggregate.ID(), "duration", time.Since(start))
	return added, err
}

// Update logs and delegates to the underlying repository.
func (r *LoggingRepository[K, T]) Update(ctx context.Context, aggregate T) (T, error) {
	start := time.Now()
	updated, err := r.repository.Update(ctx, aggregate)
	r.mutation("repository update", err, "id", aggregate.ID(), "duration", time.Since(start))
	return updated, err
}

// Delete logs and delegates to the underlying repository.
func (r *LoggingRepository[K, T]) Delete(ctx context.Context, aggregate T) error {
	start := time.Now()
	err := r.repository.Delete(ctx, aggregate)
	r.mutation("repository delete", err, "id", aggregate.ID(), "duration", time.Since(start))
	return err
}

func (r *LoggingRepository[K, T]) observe(msg string, err error, keysAndValues ...any) {
	if err != nil {
		r.logger.Error(msg+" failed", append(keysAndValues, "error", err)...)
		return
	}
	r.logger.Debug(msg, keysAndValues...)
}

func (r *LoggingRepository[K, T]) mutation(msg string, err error, keysAndValues ...any) {
	if err != nil {
		r.logger.Error(msg+" failed", append(keysAndValues, "error", err)...)
		return
	}
	r.logger.Info(msg, keysAndValues...)
}
