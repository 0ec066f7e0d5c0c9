/*

The serve package is the dispatch boundary above the convert package:
it obtains exactly one Outcome from a handler's Responder, drives it to
completion with the request context, then writes the resolved response
to the wire or renders the failure as an RFC 7807 problem document.

Most applications need a single *Deliverer, configured once:

	d := serve.NewDeliverer(serve.WithLogger(myLogger))
	mux.Handle("/things", d.HTTP(listThings))

*/
package serve
