package ddd

import "slices"

// AggregateRoot is the sole externally addressable Entity of a consistency
// boundary. Business methods register domain events as a side effect; a
// repository (or a decorating repository) drains them when the aggregate is
// persisted.
type AggregateRoot[K comparable] interface {
	Entity[K]

	// RegisterDomainEvent appends event to the pending buffer. It never
	// fails and has no side effect beyond the mutation.
	RegisterDomainEvent(event DomainEvent)

	// DrainDomainEvents empties the pending buffer and returns its prior
	// contents in registration order. A second call with no intervening
	// registration returns an empty result.
	DrainDomainEvents() []DomainEvent
}

// AggregateBase is an embeddable AggregateRoot implementation.
//
// The event buffer is owned by a single writer. Register and drain only
// through these methods; an aggregate instance is not safe for concurrent
// mutation.
type AggregateBase[K comparable] struct {
	EntityBase[K]
	events []DomainEvent
}

// NewAggregateBase creates an AggregateBase with the given identity and an
// empty event buffer.
func NewAggregateBase[K comparable](id K) AggregateBase[K] {
	return AggregateBase[K]{EntityBase: NewEntityBase(id)}
}

// RegisterDomainEvent appends event to the pending buffer.
func (a *AggregateBase[K]) RegisterDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DrainDomainEvents empties the buffer and returns its contents in FIFO
// order.
func (a *AggregateBase[K]) DrainDomainEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

// CloneBase returns a copy of the base whose event buffer does not alias the
// receiver's. Concrete aggregates use it to implement their Clone method.
func (a *AggregateBase[K]) CloneBase() AggregateBase[K] {
	clone := *a
	clone.events = slices.Clone(a.events)
	return clone
}
