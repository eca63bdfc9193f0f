package http

import (
	"encoding/json"
	"errors"
	"net/http"

	ddd "github.com/dddkit/ddd-go"
)

// Translator builds a request value from the incoming HTTP request, for
// endpoints whose input does not arrive as a JSON body (path variables,
// query parameters).
type Translator[Req any] func(r *http.Request) (Req, error)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatusOf maps an error to the HTTP status for its taxonomy kind.
// Unclassified errors map to 500.
func StatusOf(err error) int {
	switch ddd.KindOf(err) {
	case ddd.KindInvalid:
		return http.StatusUnprocessableEntity
	case ddd.KindUnauthorized:
		return http.StatusUnauthorized
	case ddd.KindForbidden:
		return http.StatusForbidden
	case ddd.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error response, including field errors for
// invalid input.
func WriteError(w http.ResponseWriter, err error) {
	response := errorResponse{Error: ddd.KindOf(err).String()}

	var dddErr *ddd.Error
	if errors.As(err, &dddErr) {
		for _, f := range dddErr.Fields {
			response.Fields = append(response.Fields, fieldError{Field: f.Field, Message: f.Message})
		}
	}

	writeJSON(w, StatusOf(err), response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
