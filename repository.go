package ddd

import "context"

// ReadRepository is the read side of a Repository.
type ReadRepository[K comparable, T AggregateRoot[K]] interface {
	// GetByID returns the stored aggregate with the given identity. The
	// boolean is false when the identity is absent; absence is not an
	// error.
	GetByID(ctx context.Context, id K) (T, bool, error)

	// List returns up to take aggregates after skipping skip. The order is
	// implementation defined; no ordering is guaranteed.
	List(ctx context.Context, skip, take int) ([]T, error)

	// Count returns the total number of stored aggregates.
	Count(ctx context.Context) (int, error)
}

// Repository abstracts persistence of aggregate roots, keyed by entity
// identity.
type Repository[K comparable, T AggregateRoot[K]] interface {
	ReadRepository[K, T]

	// Add inserts the aggregate under its identity. An existing entry with
	// the same identity is silently overwritten.
	Add(ctx context.Context, aggregate T) (T, error)

	// Update persists the aggregate's current state under its identity,
	// replacing the stored value entirely. The in-memory store upserts; a
	// backend that tracks existence should fail with a NotFound error for
	// an absent identity and document that policy.
	Update(ctx context.Context, aggregate T) (T, error)

	// Delete removes the entry for the aggregate's identity. Deleting an
	// absent identity is a no-op, not an error.
	Delete(ctx context.Context, aggregate T) error
}

// The derived operations below are package functions rather than interface
// methods so that no implementation can change their semantics.

// Exists reports whether an aggregate with the given identity is stored,
// derived from GetByID.
func Exists[K comparable, T AggregateRoot[K]](ctx context.Context, r ReadRepository[K, T], id K) (bool, error) {
	_, ok, err := r.GetByID(ctx, id)
	return ok, err
}

// IsEmpty reports whether the repository holds no aggregates, derived from
// Count.
func IsEmpty[K comparable, T AggregateRoot[K]](ctx context.Context, r ReadRepository[K, T]) (bool, error) {
	n, err := r.Count(ctx)
	return n == 0, err
}

// AddRange adds each aggregate in order, stopping at the first failure.
// Aggregates added before the failure stay committed; the returned slice
// holds the processed prefix.
func AddRange[K comparable, T AggregateRoot[K]](ctx context.Context, r Repository[K, T], aggregates []T) ([]T, error) {
	added := make([]T, 0, len(aggregates))
	for _, aggregate := range aggregates {
		a, err := r.Add(ctx, aggregate)
		if err != nil {
			return added, err
		}
		added = append(added, a)
	}
	return added, nil
}

// UpdateRange updates each aggregate in order, stopping at the first
// failure. Updates made before the failure stay committed.
func UpdateRange[K comparable, T AggregateRoot[K]](ctx context.Context, r Repository[K, T], aggregates []T) ([]T, error) {
	updated := make([]T, 0, len(aggregates))
	for _, aggregate := range aggregates {
		a, err := r.Update(ctx, aggregate)
		if err != nil {
			return updated, err
		}
		updated = append(updated, a)
	}
	return updated, nil
}

// DeleteRange deletes each aggregate in order, stopping at the first
// failure. Deletions made before the failure stay committed.
func DeleteRange[K comparable, T AggregateRoot[K]](ctx context.Context, r Repository[K, T], aggregates []T) error {
	for _, aggregate := range aggregates {
		if err := r.Delete(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}
