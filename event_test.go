package ddd

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventBase_Identity(t *testing.T) {
	a := NewEventBase()
	b := NewEventBase()
	assert.NotEqual(t, uuid.Nil, a.EventID())
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestEventBase_OccurredAtUTC(t *testing.T) {
	restore := now
	defer func() { now = restore }()

	loc := time.FixedZone("UTC+2", 2*60*60)
	frozen := time.Date(2024, 3, 1, 12, 0, 0, 0, loc)
	now = func() time.Time { return frozen }

	e := NewEventBase()
	assert.Equal(t, time.UTC, e.OccurredAt().Location())
	assert.True(t, e.OccurredAt().Equal(frozen))
}

// A taxonomy of event kinds is a closed set of concrete types dispatched
// with a type switch.
func TestDomainEvent_TaggedUnionDispatch(t *testing.T) {
	events := []DomainEvent{
		reservationConfirmed{EventBase: NewEventBase(), code: "ABC"},
		reservationCancelled{EventBase: NewEventBase(), reason: "no show"},
	}

	var seen []string
	for _, event := range events {
		switch e := event.(type) {
		case reservationConfirmed:
			seen = append(seen, "confirmed:"+e.code)
		case reservationCancelled:
			seen = append(seen, "cancelled:"+e.reason)
		default:
			t.Fatalf("unexpected event type %T", e)
		}
	}

	assert.Equal(t, []string{"confirmed:ABC", "cancelled:no show"}, seen)
}
