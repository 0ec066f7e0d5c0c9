package convert

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/convey/http/resp"
)

// Custom wraps another Responder, overriding the status code and
// headers of whatever the wrapped value resolves to. A *Custom is
// itself a Responder, so decorators nest.
type Custom[T Responder] struct {
	inner  T
	status int
	fields []resp.Field
	err    error
}

// With begins decorating inner.
func With[T Responder](inner T) *Custom[T] {
	return &Custom[T]{inner: inner}
}

// WithStatus pairs a Responder with an explicit status code, applied
// unconditionally once the wrapped conversion resolves.
func WithStatus[T Responder](val T, code int) *Custom[T] {
	return With(val).Status(code)
}

// Status overrides the status code of the wrapped response.
// Across calls, the last one wins.
func (c *Custom[T]) Status(code int) *Custom[T] {
	c.status = code
	return c
}

// Header records a header override. Entries accumulate across calls;
// at resolution each replaces the wrapped response's values for its
// name, in the order recorded.
//
// A malformed name or value does not interrupt the chain: the first
// construction error is recorded and surfaces as a failure when the
// outcome resolves.
func (c *Custom[T]) Header(name, value string) *Custom[T] {
	f, err := resp.NewField(name, value)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}

	c.fields = append(c.fields, f)
	return c
}

func (c *Custom[T]) Respond(r *http.Request) Outcome {
	return &decorated{
		inner:  c.inner.Respond(r),
		status: c.status,
		fields: c.fields,
		err:    c.err,
	}
}

// decorated is the deferred counterpart of Custom: it suspends exactly
// as long as the wrapped outcome does, then applies overrides on top of
// the resolved response.
type decorated struct {
	inner  Outcome
	status int
	fields []resp.Field
	err    error
}

func (d *decorated) Await(ctx context.Context) (*resp.Response, error) {
	re, err := d.inner.Await(ctx)
	if err != nil {
		// NOTE: overrides never apply to failures.
		return nil, err
	}

	if d.err != nil {
		return nil, d.err
	}

	if d.status != 0 {
		re.SetStatus(d.status)
	}

	for _, f := range d.fields {
		re.Headers().Set(f.Name, f.Value)
	}

	return re, nil
}
