package booking

import (
	"context"
	"time"

	ddd "github.com/dddkit/ddd-go"
)

// Repository is the persistence contract for bookings.
type Repository = ddd.Repository[string, *Booking]

const defaultPageSize = 50

// View is the booking representation returned to callers.
type View struct {
	ID        string    `json:"id"`
	Guest     string    `json:"guest"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Cancelled bool      `json:"cancelled"`
}

func viewOf(b *Booking) View {
	return View{
		ID:        b.ID(),
		Guest:     b.Guest(),
		CheckIn:   b.Stay().CheckIn,
		CheckOut:  b.Stay().CheckOut,
		Cancelled: b.IsCancelled(),
	}
}

// CreateRequest opens a new booking.
type CreateRequest struct {
	Guest    string    `json:"guest"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// CreateHandler validates and persists new bookings.
type CreateHandler struct {
	Bookings Repository
}

// Handle implements ddd.RequestHandler.
func (h CreateHandler) Handle(ctx context.Context, request CreateRequest) (View, error) {
	b, err := New(request.Guest, Stay{CheckIn: request.CheckIn, CheckOut: request.CheckOut})
	if err != nil {
		return View{}, err
	}

	added, err := h.Bookings.Add(ctx, b)
	if err != nil {
		return View{}, ddd.Internal(err)
	}
	return viewOf(added), nil
}

// GetRequest fetches a booking by identity.
type GetRequest struct {
	ID string
}

// GetHandler serves single-booking reads.
type GetHandler struct {
	Bookings Repository
}

// Handle implements ddd.RequestHandler.
func (h GetHandler) Handle(ctx context.Context, request GetRequest) (View, error) {
	b, ok, err := h.Bookings.GetByID(ctx, request.ID)
	if err != nil {
		return View{}, ddd.Internal(err)
	}
	if !ok {
		return View{}, ddd.NotFound()
	}
	return viewOf(b), nil
}

// ListRequest pages through stored bookings.
type ListRequest struct {
	Skip int
	Take int
}

// ListHandler serves paged reads.
type ListHandler struct {
	Bookings Repository
}

// Handle implements ddd.RequestHandler.
func (h ListHandler) Handle(ctx context.Context, request ListRequest) ([]View, error) {
	take := request.Take
	if take <= 0 {
		take = defaultPageSize
	}

	bookings, err := h.Bookings.List(ctx, request.Skip, take)
	if err != nil {
		return nil, ddd.Internal(err)
	}

	views := make([]View, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, viewOf(b))
	}
	return views, nil
}

// CancelRequest cancels a booking.
type CancelRequest struct {
	ID     string
	Reason string `json:"reason"`
}

// CancelHandler loads, cancels and persists a booking; the registered
// Cancelled event is delivered by the domain repository decorator on Update.
type CancelHandler struct {
	Bookings Repository
}

// Handle implements ddd.RequestHandler.
func (h CancelHandler) Handle(ctx context.Context, request CancelRequest) (View, error) {
	b, ok, err := h.Bookings.GetByID(ctx, request.ID)
	if err != nil {
		return View{}, ddd.Internal(err)
	}
	if !ok {
		return View{}, ddd.NotFound()
	}

	b.Cancel(request.Reason)

	updated, err := h.Bookings.Update(ctx, b)
	if err != nil {
		return View{}, ddd.Internal(err)
	}
	return viewOf(updated), nil
}
