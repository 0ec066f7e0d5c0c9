package serve

import "github.com/xy-planning-network/convey/logger"

// A DelivererOptFn mutates the provided *Deliverer in some way.
// A DelivererOptFn is used when constructing a new Deliverer.
type DelivererOptFn func(*Deliverer)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Deliverer) {
	return func(d *Deliverer) {
		d.logger = log
	}
}

// WithFailureWriter sets how a *Deliverer renders normalized failures,
// replacing the default RFC 7807 problem document.
func WithFailureWriter(fn FailureWriter) func(*Deliverer) {
	return func(d *Deliverer) {
		d.onFailure = fn
	}
}
