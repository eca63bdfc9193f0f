package ddd

import "context"

// NotificationHandler handles an in-process notification of kind N.
//
// Notifications, unlike requests, announce an occurrence to interested
// parties and expect no response. A notification taxonomy is a closed set of
// concrete types; handlers dispatch on the active variant with a type
// switch.
type NotificationHandler[N any] interface {
	Handle(ctx context.Context, notification N) error
}

// NotificationHandlerFunc adapts a function to the NotificationHandler
// interface.
type NotificationHandlerFunc[N any] func(ctx context.Context, notification N) error

// Handle calls f.
func (f NotificationHandlerFunc[N]) Handle(ctx context.Context, notification N) error {
	return f(ctx, notification)
}
