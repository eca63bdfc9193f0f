package ddd

import "context"

// RequestHandler handles a request and produces its response.
//
// Requests are usually commands or queries. Commands change the state of the
// system; queries return a result without observable side effects. Errors
// crossing this boundary should be *Error values so a presentation layer can
// narrow them into the taxonomy (see ErrorKind).
type RequestHandler[Req any, Res any] interface {
	Handle(ctx context.Context, request Req) (Res, error)
}

// RequestHandlerFunc adapts a function to the RequestHandler interface.
type RequestHandlerFunc[Req any, Res any] func(ctx context.Context, request Req) (Res, error)

// Handle calls f.
func (f RequestHandlerFunc[Req, Res]) Handle(ctx context.Context, request Req) (Res, error) {
	return f(ctx, request)
}
