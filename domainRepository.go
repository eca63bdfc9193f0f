package ddd

import "context"

// DomainEventHandler receives the domain events drained from an aggregate
// when it is persisted through a DomainRepository.
type DomainEventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// DomainEventHandlerFunc adapts a function to the DomainEventHandler
// interface.
type DomainEventHandlerFunc func(ctx context.Context, event DomainEvent) error

// Handle calls f.
func (f DomainEventHandlerFunc) Handle(ctx context.Context, event DomainEvent) error {
	return f(ctx, event)
}

// DomainRepository decorates a Repository so that every mutation also hands
// the aggregate's pending domain events to a handler.
//
// Events are drained before the store call, so the buffer reflects events
// registered strictly before this call. A store error is propagated without
// invoking the handler. Events are delivered in registration order; the
// first handler error aborts delivery of the remaining events and is
// returned to the caller. The completed store mutation is never undone:
// persistence and event handling are not atomic, and the mutation is visible
// to other callers before events are handled.
type DomainRepository[K comparable, T AggregateRoot[K]] struct {
	repository Repository[K, T]
	handler    DomainEventHandler
}

// NewDomainRepository decorates repository with handler.
func NewDomainRepository[K comparable, T AggregateRoot[K]](repository Repository[K, T], handler DomainEventHandler) *DomainRepository[K, T] {
	return &DomainRepository[K, T]{repository: repository, handler: handler}
}

// GetByID delegates to the underlying repository.
func (r *DomainRepository[K, T]) GetByID(ctx context.Context, id K) (T, bool, error) {
	return r.repository.GetByID(ctx, id)
}

// List delegates to the underlying repository.
func (r *DomainRepository[K, T]) List(ctx context.Context, skip, take int) ([]T, error) {
	return r.repository.List(ctx, skip, take)
}

// Count delegates to the underlying repository.
func (r *DomainRepository[K, T]) Count(ctx context.Context) (int, error) {
	return r.repository.Count(ctx)
}

// Add persists the aggregate, then delivers its drained events.
func (r *DomainRepository[K, T]) Add(ctx context.Context, aggregate T) (T, error) {
	events := aggregate.DrainDomainEvents()

	added, err := r.repository.Add(ctx, aggregate)
	if err != nil {
		return added, err
	}

	return added, r.dispatch(ctx, events)
}

// Update persists the aggregate, then delivers its drained events.
func (r *DomainRepository[K, T]) Update(ctx context.Context, aggregate T) (T, error) {
	events := aggregate.DrainDomainEvents()

	updated, err := r.repository.Update(ctx, aggregate)
	if err != nil {
		return updated, err
	}

	return updated, r.dispatch(ctx, events)
}

// Delete removes the aggregate, then delivers its drained events.
func (r *DomainRepository[K, T]) Delete(ctx context.Context, aggregate T) error {
	events := aggregate.DrainDomainEvents()

	if err := r.repository.Delete(ctx, aggregate); err != nil {
		return err
	}

	return r.dispatch(ctx, events)
}

func (r *DomainRepository[K, T]) dispatch(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		if err := r.handler.Handle(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
