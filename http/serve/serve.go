package serve

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/convey"
	"github.com/xy-planning-network/convey/http/convert"
	"github.com/xy-planning-network/convey/http/fail"
	"github.com/xy-planning-network/convey/http/resp"
	"github.com/xy-planning-network/convey/logger"
)

const delivererFrames = 0

// A Handler produces the Responder for a request. It is the signature
// application handlers take when their responses go through a Deliverer.
type Handler func(r *http.Request) convert.Responder

// A FailureWriter renders a normalized failure onto the wire.
type FailureWriter func(w http.ResponseWriter, r *http.Request, f *fail.Failure)

// A Deliverer drives conversions to completion and writes the result.
//
// Setting up a single instance of a Deliverer suffices for most
// applications; it holds only application-wide configuration of how
// failures render and where logs go.
type Deliverer struct {
	logger    logger.Logger
	onFailure FailureWriter
}

// NewDeliverer constructs a *Deliverer using the DelivererOptFns passed in.
func NewDeliverer(opts ...DelivererOptFn) *Deliverer {
	d := &Deliverer{}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(delivererFrames)
	}

	if d.onFailure == nil {
		d.onFailure = d.writeProblem
	}

	return d
}

// HTTP adapts handler into an http.Handler.
//
// Per request it obtains exactly one Outcome, awaits it with the
// request context, and writes the resolved response. A failure, whether
// the handler's or the conversion's, renders through the configured
// FailureWriter. A request abandoned mid-conversion is logged and
// dropped without writing.
func (d *Deliverer) HTTP(handler Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rdr := handler(r)
		if rdr == nil {
			err := fmt.Errorf("%w: handler returned no responder", convey.ErrBadConfig)
			d.fail(w, r, fail.Normalize(err))
			return
		}

		re, err := rdr.Respond(r).Await(r.Context())

		select {
		case <-r.Context().Done():
			err = fmt.Errorf("%w: %s", convey.ErrDone, r.Context().Err())
			d.logger.Info(err.Error(), &logger.LogContext{Error: err, Request: r})
			return
		default:
		}

		if err != nil {
			d.fail(w, r, fail.Normalize(err))
			return
		}

		d.write(w, r, re)
	})
}

// write copies the resolved response onto the wire.
func (d *Deliverer) write(w http.ResponseWriter, r *http.Request, re *resp.Response) {
	for name, vals := range re.Headers() {
		for _, val := range vals {
			w.Header().Add(name, val)
		}
	}

	w.WriteHeader(re.Status())

	if body := re.Body(); len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			d.logger.Error(fmt.Sprintf("cannot write response: %s", err), &logger.LogContext{
				Error:   err,
				Request: r,
			})
		}
	}
}

// fail logs the normalized failure and renders it.
func (d *Deliverer) fail(w http.ResponseWriter, r *http.Request, f *fail.Failure) {
	d.logger.Error(f.Error(), &logger.LogContext{
		Data:    map[string]any{"status": f.Status(), "instance": f.Instance()},
		Error:   f,
		Request: r,
	})

	d.onFailure(w, r, f)
}

// writeProblem is the default FailureWriter.
func (d *Deliverer) writeProblem(w http.ResponseWriter, r *http.Request, f *fail.Failure) {
	if err := fail.WriteJSON(w, f); err != nil {
		d.logger.Error(fmt.Sprintf("cannot render failure: %s", err), &logger.LogContext{
			Error:   err,
			Request: r,
		})
	}
}
