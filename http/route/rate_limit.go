package route

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// staleAfter is how long a visitor without traffic stays tracked.
const staleAfter = time.Hour

// A Visitor pairs a rate limiter with the time it last made a request.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// Visitors tracks a Visitor per client IP address.
type Visitors struct {
	limit rate.Limit
	burst int

	mu  sync.Mutex
	val map[string]Visitor
}

// NewVisitors constructs a Visitors whose entries allow limit requests
// per second in bursts of up to burst.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	return &Visitors{limit: limit, burst: burst, val: make(map[string]Visitor)}
}

// Fetch retrieves the Visitor for ip, creating one if not yet seen,
// and stamps it as seen now.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// cleanup forgets visitors without traffic for over staleAfter.
func (vs *Visitors) cleanup() {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > staleAfter {
			delete(vs.val, ip)
		}
	}
}

// RateLimit turns away requests whose client IP exhausted its limiter,
// writing 429 before the request reaches the handler.
//
// If visitors is nil, NoopAdapter returns and this middleware does nothing.
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(ClientIP(r.Header)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
