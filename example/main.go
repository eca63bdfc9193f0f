package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gorilla/mux"

	ddd "github.com/dddkit/ddd-go"
	"github.com/dddkit/ddd-go/config"
	"github.com/dddkit/ddd-go/example/booking"
	dddhttp "github.com/dddkit/ddd-go/http"
	"github.com/dddkit/ddd-go/inMemory"
)

type properties struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
}

func main() {
	props, err := config.Properties[properties]("example")
	if err != nil {
		props = &properties{Address: ":8080", Mode: "dev"}
	}

	logger, err := ddd.NewLogger(props.Mode)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	bookings := newBookingRepository(logger)

	server := dddhttp.NewServer(props.Address, logger)

	server.Register(dddhttp.NewEndpoint[booking.CreateRequest, booking.View](
		"/bookings", http.MethodPost, booking.CreateHandler{Bookings: bookings}))

	server.Register(dddhttp.NewEndpoint[booking.GetRequest, booking.View](
		"/bookings/{id}", http.MethodGet, booking.GetHandler{Bookings: bookings}).
		WithTranslator(func(r *http.Request) (booking.GetRequest, error) {
			return booking.GetRequest{ID: mux.Vars(r)["id"]}, nil
		}))

	server.Register(dddhttp.NewEndpoint[booking.ListRequest, []booking.View](
		"/bookings", http.MethodGet, booking.ListHandler{Bookings: bookings}).
		WithTranslator(func(r *http.Request) (booking.ListRequest, error) {
			skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
			take, _ := strconv.Atoi(r.URL.Query().Get("take"))
			return booking.ListRequest{Skip: skip, Take: take}, nil
		}))

	server.Register(dddhttp.NewEndpoint[booking.CancelRequest, booking.View](
		"/bookings/{id}/cancel", http.MethodPost, booking.CancelHandler{Bookings: bookings}).
		WithTranslator(func(r *http.Request) (booking.CancelRequest, error) {
			return booking.CancelRequest{ID: mux.Vars(r)["id"], Reason: r.URL.Query().Get("reason")}, nil
		}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newBookingRepository stacks the store with tracing, logging and domain
// event dispatch.
func newBookingRepository(logger *ddd.Logger) booking.Repository {
	store := inMemory.NewRepository[string, *booking.Booking]()

	traced := ddd.NewTracedRepository[string, *booking.Booking](store)
	logged := ddd.NewLoggingRepository[string, *booking.Booking](traced, logger)

	return ddd.NewDomainRepository[string, *booking.Booking](logged,
		ddd.DomainEventHandlerFunc(func(_ context.Context, event ddd.DomainEvent) error {
			switch e := event.(type) {
			case booking.Created:
				logger.Info("booking created", "guest", e.Guest, "event", e.EventID())
			case booking.Cancelled:
				logger.Info("booking cancelled", "reason", e.Reason, "event", e.EventID())
			}
			return nil
		}))
}
