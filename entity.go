package ddd

import (
	"github.com/google/uuid"
)

// Entity is a domain object with a stable identity. Two entities are equal
// iff their identities are equal, regardless of any other field values.
type Entity[K comparable] interface {
	// ID returns the entity's identity.
	ID() K

	// Equals reports whether other carries the same identity.
	Equals(other Entity[K]) bool
}

// EntityBase is an embeddable Entity implementation. The identity is set at
// construction and never changes.
type EntityBase[K comparable] struct {
	id K
}

// NewEntityBase creates an EntityBase with the provided identity.
func NewEntityBase[K comparable](id K) EntityBase[K] {
	return EntityBase[K]{id: id}
}

// ID returns the entity's identity.
func (e EntityBase[K]) ID() K {
	return e.id
}

// Equals checks identity equality only. Non-identity fields of the concrete
// entity type never participate.
func (e EntityBase[K]) Equals(other Entity[K]) bool {
	if other == nil {
		return false
	}
	return e.id == other.ID()
}

// NewUUID generates a random identity for string-keyed entities.
func NewUUID() string {
	return uuid.New().String()
}
