package convert

import (
	"net/http"

	"github.com/xy-planning-network/convey/http/fail"
)

// A Fault is an error tagged with the status code its rendering should
// use. It is both an error and a Responder: returning one from a
// handler resolves directly into a failure outcome carrying the tagged
// code. It is a response-shaped error, never a success.
type Fault struct {
	Code int
	Err  error
}

// NewFault tags err with the given status code.
func NewFault(err error, code int) Fault {
	return Fault{Code: code, Err: err}
}

// Error implements error.
func (f Fault) Error() string {
	if f.Err == nil {
		return http.StatusText(f.Status())
	}
	return f.Err.Error()
}

// Unwrap exposes the tagged error to errors.Is and errors.As.
func (f Fault) Unwrap() error { return f.Err }

// Status reports the tagged status code, defaulting to 500.
func (f Fault) Status() int {
	if f.Code == 0 {
		return http.StatusInternalServerError
	}
	return f.Code
}

func (f Fault) Respond(_ *http.Request) Outcome {
	return Failed(fail.Normalize(f))
}
