package fail

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// A Failure is the normalized form of any error produced while
// converting a handler value into a response.
//
// A Failure carries the status code the error renders with and a
// unique instance id correlating the rendered problem with logs.
type Failure struct {
	code     int
	err      error
	instance string
}

// New wraps err as a *Failure rendering with the given status code.
// A zero or out-of-range code becomes 500.
func New(err error, code int) *Failure {
	if code < 100 || code > 599 {
		code = http.StatusInternalServerError
	}

	return &Failure{
		code:     code,
		err:      err,
		instance: uuid.NewString(),
	}
}

// Error implements error.
func (f *Failure) Error() string {
	if f.err == nil {
		return http.StatusText(f.code)
	}
	return f.err.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (f *Failure) Unwrap() error { return f.err }

// Status reports the status code the Failure renders with.
func (f *Failure) Status() int { return f.code }

// Instance reports the unique id identifying this Failure.
func (f *Failure) Instance() string { return f.instance }

// statusCoder is satisfied by errors that carry their own target status code.
type statusCoder interface {
	Status() int
}

// Normalize converts any error into a *Failure.
//
// A *Failure anywhere in err's chain passes through untouched. An error
// exposing Status() int keeps its code. Anything else becomes a 500.
// A nil err normalizes to a bare 500, guarding callers that normalize
// unconditionally.
func Normalize(err error) *Failure {
	if err == nil {
		return New(nil, http.StatusInternalServerError)
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		return New(err, sc.Status())
	}

	return New(err, http.StatusInternalServerError)
}

// A ProblemDetail is the RFC 7807 rendering of a Failure.
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Problem shapes the Failure as a ProblemDetail.
//
// The wrapped error's message is exposed as the detail only for 4xx
// codes; 5xx details stay in the logs.
func (f *Failure) Problem() ProblemDetail {
	pd := ProblemDetail{
		Type:     "about:blank",
		Title:    http.StatusText(f.code),
		Status:   f.code,
		Instance: f.instance,
	}

	if f.err != nil && f.code < http.StatusInternalServerError {
		pd.Detail = f.err.Error()
	}

	return pd
}

// WriteJSON renders the Failure onto w as an RFC 7807 problem document.
func WriteJSON(w http.ResponseWriter, f *Failure) error {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(f.Status())
	return json.NewEncoder(w).Encode(f.Problem())
}
