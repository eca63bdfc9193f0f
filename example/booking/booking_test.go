package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ddd "github.com/dddkit/ddd-go"
	"github.com/dddkit/ddd-go/inMemory"
)

func validStay() Stay {
	return Stay{
		CheckIn:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC),
	}
}

func TestNew_RegistersCreatedEvent(t *testing.T) {
	b, err := New("Ada", validStay())
	assert.NoError(t, err)

	events := b.DrainDomainEvents()
	assert.Len(t, events, 1)
	assert.IsType(t, Created{}, events[0])
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", Stay{})
	assert.True(t, ddd.IsInvalid(err))

	var dddErr *ddd.Error
	assert.ErrorAs(t, err, &dddErr)
	assert.Len(t, dddErr.Fields, 2)
}

func TestCancel_IsIdempotent(t *testing.T) {
	b, err := New("Ada", validStay())
	assert.NoError(t, err)
	b.DrainDomainEvents()

	b.Cancel("change of plans")
	b.Cancel("again")

	events := b.DrainDomainEvents()
	assert.Len(t, events, 1)
	assert.True(t, b.IsCancelled())
}

func TestStay_ValueEquality(t *testing.T) {
	a := validStay()
	b := validStay()
	b.Note = "sea view if possible"
	assert.True(t, ddd.Equal(a, b))

	b.CheckOut = b.CheckOut.Add(24 * time.Hour)
	assert.False(t, ddd.Equal(a, b))
}

func TestHandlers_CreateGetCancel(t *testing.T) {
	ctx := context.Background()
	var bookings Repository = inMemory.NewRepository[string, *Booking]()

	view, err := CreateHandler{Bookings: bookings}.Handle(ctx, CreateRequest{
		Guest:    "Ada",
		CheckIn:  validStay().CheckIn,
		CheckOut: validStay().CheckOut,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, view.ID)

	got, err := GetHandler{Bookings: bookings}.Handle(ctx, GetRequest{ID: view.ID})
	assert.NoError(t, err)
	assert.Equal(t, "Ada", got.Guest)

	_, err = GetHandler{Bookings: bookings}.Handle(ctx, GetRequest{ID: "missing"})
	assert.True(t, ddd.IsNotFound(err))

	cancelled, err := CancelHandler{Bookings: bookings}.Handle(ctx, CancelRequest{ID: view.ID, Reason: "storm"})
	assert.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	page, err := ListHandler{Bookings: bookings}.Handle(ctx, ListRequest{})
	assert.NoError(t, err)
	assert.Len(t, page, 1)
}
