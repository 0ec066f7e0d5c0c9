package convert

import (
	"net/http"

	"github.com/xy-planning-network/convey/http/fail"
	"github.com/xy-planning-network/convey/http/resp"
)

// Opt responds with its value when present and 404 Not Found otherwise.
// Absence is not a failure: the 404 resolves on the success path.
type Opt[T Responder] struct {
	val T
	ok  bool
}

// Some constructs an Opt holding val.
func Some[T Responder](val T) Opt[T] { return Opt[T]{val: val, ok: true} }

// None constructs an empty Opt.
func None[T Responder]() Opt[T] { return Opt[T]{} }

func (o Opt[T]) Respond(r *http.Request) Outcome {
	if !o.ok {
		return Ready(resp.Build(http.StatusNotFound).Finish())
	}

	// NOTE: present delegates entirely; the inner Outcome passes
	// through with its shape and failure type untouched.
	return o.val.Respond(r)
}

// Attempt responds with its value when Err is nil and short-circuits
// into a normalized failure otherwise. It is the Responder shape for
// the familiar (value, error) pair.
type Attempt[T Responder] struct {
	Val T
	Err error
}

// OK constructs an Attempt on the success branch.
func OK[T Responder](val T) Attempt[T] { return Attempt[T]{Val: val} }

// Errored constructs an Attempt on the error branch.
func Errored[T Responder](err error) Attempt[T] { return Attempt[T]{Err: err} }

func (a Attempt[T]) Respond(r *http.Request) Outcome {
	if a.Err != nil {
		return Failed(fail.Normalize(a.Err))
	}

	return Normalized(a.Val.Respond(r))
}
