/*

The route package registers convey handlers on a gorilla/mux router,
delivering every matched request through a serve.Deliverer. It also
carries the middleware plumbing: the Adapter type for chaining
http.Handler wrappers, plus request logging, request id, per-IP rate
limiting, and CORS adapters.

*/
package route
