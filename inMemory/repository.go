package inMemory

import (
	"context"
	"sync"

	ddd "github.com/dddkit/ddd-go"
)

// Aggregate constrains the element type of a Repository: an aggregate root
// that can deep-copy itself.
type Aggregate[K comparable, T any] interface {
	ddd.AggregateRoot[K]
	Clone() T
}

// Repository is an in-memory ddd.Repository backed by a map behind a single
// read-write lock. Reads proceed concurrently with other reads; any write
// excludes all other readers and writers for the whole map. Aggregates are
// cloned at the read and write boundary, so callers never hold a reference
// into the store's internal state.
//
// Stored state is process-local and does not survive a restart.
type Repository[K comparable, T Aggregate[K, T]] struct {
	mu         sync.RWMutex
	aggregates map[K]T
}

// NewRepository creates an empty Repository.
func NewRepository[K comparable, T Aggregate[K, T]]() *Repository[K, T] {
	return &Repository[K, T]{aggregates: make(map[K]T)}
}

// GetByID returns a copy of the stored aggregate with the given identity.
func (r *Repository[K, T]) GetByID(ctx context.Context, id K) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.aggregates[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	return aggregate.Clone(), true, nil
}

// List returns up to take aggregate copies after skipping skip, in map
// iteration order. No ordering is guaranteed.
func (r *Repository[K, T]) List(ctx context.Context, skip, take int) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if take <= 0 {
		return nil, nil
	}

	aggregates := make([]T, 0, min(take, len(r.aggregates)))
	i := 0
	for _, aggregate := range r.aggregates {
		if i < skip {
			i++
			continue
		}
		aggregates = append(aggregates, aggregate.Clone())
		if len(aggregates) == take {
			break
		}
	}
	return aggregates, nil
}

// Count returns the number of stored aggregates.
func (r *Repository[K, T]) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.aggregates), nil
}

// Add stores a copy of the aggregate under its identity, overwriting any
// existing entry.
func (r *Repository[K, T]) Add(ctx context.Context, aggregate T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aggregates[aggregate.ID()] = aggregate.Clone()
	return aggregate, nil
}

// Update behaves identically to Add: the entry is replaced entirely, whether
// or not it existed.
func (r *Repository[K, T]) Update(ctx context.Context, aggregate T) (T, error) {
	return r.Add(ctx, aggregate)
}

// Delete removes the entry for the aggregate's identity. Absent entries are
// a no-op.
func (r *Repository[K, T]) Delete(ctx context.Context, aggregate T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.aggregates, aggregate.ID())
	return nil
}
