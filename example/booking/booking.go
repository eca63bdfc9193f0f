// Package booking is a small sample domain built on the library's building
// blocks: an aggregate root with a closed event taxonomy, a value object and
// request handlers served over HTTP.
package booking

import (
	"time"

	ddd "github.com/dddkit/ddd-go"
)

// Stay is the reserved period. It is a value object: the note is carried but
// ignored for equality.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Note     string
}

// EqualityComponents returns the check-in and check-out dates.
func (s Stay) EqualityComponents() []any {
	return []any{s.CheckIn, s.CheckOut}
}

// Event is the closed taxonomy of booking domain events. Handlers dispatch
// on the concrete variant with a type switch.
type Event interface {
	ddd.DomainEvent
	isBookingEvent()
}

// Created is emitted when a booking is opened.
type Created struct {
	ddd.EventBase
	Guest string
}

func (Created) isBookingEvent() {}

// Cancelled is emitted when a booking is cancelled.
type Cancelled struct {
	ddd.EventBase
	Reason string
}

func (Cancelled) isBookingEvent() {}

// Booking is the aggregate root of the sample domain.
type Booking struct {
	ddd.AggregateBase[string]
	guest     string
	stay      Stay
	cancelled bool
}

// New validates the input and opens a booking, registering a Created event.
func New(guest string, stay Stay) (*Booking, error) {
	var fields []ddd.FieldError
	if guest == "" {
		fields = append(fields, ddd.FieldError{Field: "guest", Message: "must not be empty"})
	}
	if !stay.CheckOut.After(stay.CheckIn) {
		fields = append(fields, ddd.FieldError{Field: "stay", Message: "check-out must be after check-in"})
	}
	if len(fields) > 0 {
		return nil, ddd.Invalid(fields...)
	}

	b := &Booking{
		AggregateBase: ddd.NewAggregateBase(ddd.NewUUID()),
		guest:         guest,
		stay:          stay,
	}
	b.RegisterDomainEvent(Created{EventBase: ddd.NewEventBase(), Guest: guest})
	return b, nil
}

// Guest returns the guest's name.
func (b *Booking) Guest() string {
	return b.guest
}

// Stay returns the reserved period.
func (b *Booking) Stay() Stay {
	return b.stay
}

// IsCancelled reports whether the booking was cancelled.
func (b *Booking) IsCancelled() bool {
	return b.cancelled
}

// Cancel marks the booking cancelled and registers a Cancelled event.
// Cancelling twice is a no-op.
func (b *Booking) Cancel(reason string) {
	if b.cancelled {
		return
	}
	b.cancelled = true
	b.RegisterDomainEvent(Cancelled{EventBase: ddd.NewEventBase(), Reason: reason})
}

// Clone deep-copies the booking for storage boundaries.
func (b *Booking) Clone() *Booking {
	clone := *b
	clone.AggregateBase = b.AggregateBase.CloneBase()
	return &clone
}
