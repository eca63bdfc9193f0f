package ddd

import (
	"time"

	"github.com/google/uuid"
)

var now = time.Now

// DomainEvent is an immutable record of something that happened inside the
// domain, for consumption by other in-process components. An aggregate's
// event taxonomy is usually a closed set of concrete types implementing this
// interface, dispatched with a type switch.
type DomainEvent interface {
	// EventID returns the event's unique identifier.
	EventID() uuid.UUID

	// OccurredAt returns the event's creation time (UTC).
	OccurredAt() time.Time
}

// EventBase is an embeddable DomainEvent implementation.
type EventBase struct {
	id uuid.UUID
	at time.Time
}

// NewEventBase stamps a fresh event identity and UTC creation time.
func NewEventBase() EventBase {
	return EventBase{id: uuid.New(), at: now().UTC()}
}

// EventID returns the event's unique identifier.
func (e EventBase) EventID() uuid.UUID {
	return e.id
}

// OccurredAt returns the event's creation time.
func (e EventBase) OccurredAt() time.Time {
	return e.at
}
