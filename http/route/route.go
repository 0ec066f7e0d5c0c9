package route

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/convey/http/serve"
)

// A Route maps a path and HTTP method to a serve.Handler.
// Additional [Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     serve.Handler
	Middlewares []Adapter
}

// Router registers Routes on a gorilla/mux router,
// delivering every matched request through its *serve.Deliverer.
type Router struct {
	deliverer     *serve.Deliverer
	everyReqStack []Adapter
	mux           *mux.Router
}

// New constructs a *Router delivering through d.
// The given adapters wrap every registered route, outermost first.
func New(d *serve.Deliverer, every ...Adapter) *Router {
	if d == nil {
		d = serve.NewDeliverer()
	}

	return &Router{
		deliverer:     d,
		everyReqStack: every,
		mux:           mux.NewRouter(),
	}
}

// HandleRoutes registers the set of Routes,
// wrapping each in the provided middlewares and then the Route's own.
func (r *Router) HandleRoutes(routes []Route, middlewares ...Adapter) {
	for _, route := range routes {
		stack := make([]Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		stack = append(stack, r.everyReqStack...)
		stack = append(stack, middlewares...)
		stack = append(stack, route.Middlewares...)

		handler := Chain(r.deliverer.HTTP(route.Handler), stack...)
		r.mux.Handle(route.Path, handler).Methods(route.Method)
	}
}

// CatchAll sets up a handler for all routes to funnel to, e.g. maintenance mode.
func (r *Router) CatchAll(handler serve.Handler) {
	r.mux.PathPrefix("/").Handler(Chain(r.deliverer.HTTP(handler), r.everyReqStack...))
}

// ServeHTTP implements http.Handler by delegating to the underlying mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
