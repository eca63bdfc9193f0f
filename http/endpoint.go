package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	ddd "github.com/dddkit/ddd-go"
)

// Endpoint is implemented by handlers that can be mounted on the Server.
type Endpoint interface {
	Path() string
	Methods() []string
	Handler() http.HandlerFunc
}

// RequestEndpoint adapts a ddd.RequestHandler to an Endpoint. The request is
// decoded from the JSON body unless a Translator is set; the response is
// encoded as JSON. Handler errors are narrowed into the error taxonomy and
// written with the matching status.
type RequestEndpoint[Req any, Res any] struct {
	path       string
	method     string
	handler    ddd.RequestHandler[Req, Res]
	translator Translator[Req]
	status     int
}

// NewEndpoint exposes handler at path for the given HTTP method. POST
// endpoints respond 201, everything else 200.
func NewEndpoint[Req any, Res any](path, method string, handler ddd.RequestHandler[Req, Res]) *RequestEndpoint[Req, Res] {
	status := http.StatusOK
	if method == http.MethodPost {
		status = http.StatusCreated
	}
	return &RequestEndpoint[Req, Res]{
		path:    path,
		method:  method,
		handler: handler,
		status:  status,
	}
}

// WithTranslator sets a Translator used instead of JSON body decoding.
func (e *RequestEndpoint[Req, Res]) WithTranslator(translator Translator[Req]) *RequestEndpoint[Req, Res] {
	e.translator = translator
	return e
}

// Path returns the endpoint's route path.
func (e *RequestEndpoint[Req, Res]) Path() string {
	return e.path
}

// Methods returns the HTTP methods the endpoint accepts.
func (e *RequestEndpoint[Req, Res]) Methods() []string {
	return []string{e.method}
}

// Handler returns the HTTP handler for the endpoint.
func (e *RequestEndpoint[Req, Res]) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, err := e.translate(r)
		if err != nil {
			WriteError(w, err)
			return
		}

		response, err := e.handler.Handle(r.Context(), request)
		if err != nil {
			WriteError(w, err)
			return
		}

		writeJSON(w, e.status, response)
	}
}

func (e *RequestEndpoint[Req, Res]) translate(r *http.Request) (Req, error) {
	var request Req

	if e.translator != nil {
		request, err := e.translator(r)
		if err != nil && !isTaxonomyError(err) {
			return request, ddd.Invalid(ddd.FieldError{Field: "request", Message: err.Error()})
		}
		return request, err
	}

	if r.Method == http.MethodGet || r.Body == nil {
		return request, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err != io.EOF {
		return request, ddd.Invalid(ddd.FieldError{Field: "body", Message: "malformed JSON"})
	}
	return request, nil
}

func isTaxonomyError(err error) bool {
	var dddErr *ddd.Error
	return errors.As(err, &dddErr)
}
