package convert

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/convey/http/fail"
	"github.com/xy-planning-network/convey/http/resp"
)

// A Responder is any value that can convert itself into an HTTP response.
//
// Respond consumes the value: once conversion begins, the Responder
// must not be retained or reused. The request is an opaque, read-only
// handle; adapters that have no use for it pass it through untouched.
//
// Respond never fails at call time. Failures are carried inside the
// returned Outcome and surface when it resolves.
type Responder interface {
	Respond(r *http.Request) Outcome
}

// An Outcome is the deferred result of a conversion: a value that
// resolves now or later into a *resp.Response or an error.
//
// The dispatch layer drives an Outcome to completion by calling Await
// exactly once with the request context. Composing adapters suspend
// exactly when, and only when, the Outcome they wrap suspends;
// primitives never do. Abandoning an Outcome without awaiting it tears
// down the whole composition chain, as every wrapper's lifetime is
// bound to its inner Outcome's.
type Outcome interface {
	Await(ctx context.Context) (*resp.Response, error)
}

// Ready wraps an already-resolved successful response.
func Ready(re *resp.Response) Outcome { return ready{re: re} }

// Failed wraps an already-resolved failure.
func Failed(err error) Outcome { return ready{err: err} }

type ready struct {
	re  *resp.Response
	err error
}

func (r ready) Await(_ context.Context) (*resp.Response, error) { return r.re, r.err }

// OutcomeFunc adapts a function into an Outcome, for conversions that
// wrap genuinely asynchronous work. Await invokes the function, which
// should honor ctx cancellation while it suspends.
type OutcomeFunc func(ctx context.Context) (*resp.Response, error)

func (f OutcomeFunc) Await(ctx context.Context) (*resp.Response, error) { return f(ctx) }

// Normalized wraps an Outcome so that any failure it resolves with
// leaves as the unified *fail.Failure type. Successes pass through
// untouched.
func Normalized(o Outcome) Outcome { return normalized{inner: o} }

type normalized struct {
	inner Outcome
}

func (n normalized) Await(ctx context.Context) (*resp.Response, error) {
	re, err := n.inner.Await(ctx)
	if err != nil {
		return nil, fail.Normalize(err)
	}

	return re, nil
}
