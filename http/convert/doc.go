/*

The convert package turns heterogeneous handler return values into one
canonical HTTP response through a single contract, Responder.

A Responder consumes itself, producing an Outcome: the deferred result
of the conversion. Primitive adapters (Empty, Text, Blob, Buffer,
Fixed, Built) resolve immediately. Composing adapters (Opt, Attempt,
Custom, Either) defer to whatever they wrap and resolve when it does,
innermost first.

The dispatch layer (see the serve package) drives each Outcome to
completion exactly once by calling Await with the request context, then
writes the resolved response or routes the failure (always a value,
never a panic) into problem rendering. Failures leaving a composing
adapter are normalized into the fail package's *Failure.

Handlers pick the adapter matching their return shape:

	func show(r *http.Request) convert.Responder {
		thing, err := lookup(r)
		if err != nil {
			return convert.Errored[convert.Text](err)
		}
		return convert.OK(convert.Text(thing))
	}

	func created(r *http.Request) convert.Responder {
		return convert.WithStatus(convert.Text("made it"), http.StatusCreated)
	}

The adapter set is deliberately closed: new primitive shapes get a new
adapter type here rather than an open-ended dispatch mechanism.

*/
package convert
