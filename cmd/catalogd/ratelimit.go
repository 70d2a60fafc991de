package main

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

// clientBucket is one client's token bucket and when it was last used.
type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

// clientLimiter keeps one token bucket per client address. Buckets idle for
// longer than the TTL are dropped by Sweep.
type clientLimiter struct {
	buckets sync.Map // client -> *clientBucket
	limit   rate.Limit
	burst   int
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
	}
}

func (cl *clientLimiter) get(client string, now time.Time) *rate.Limiter {
	b, ok := cl.buckets.Load(client)
	if !ok {
		b, _ = cl.buckets.LoadOrStore(client, &clientBucket{limiter: rate.NewLimiter(cl.limit, cl.burst)})
	}
	bucket := b.(*clientBucket)
	bucket.lastSeen.Store(now.UnixNano())
	return bucket.limiter
}

// Allow reports whether client may make a request now.
func (cl *clientLimiter) Allow(client string) bool {
	now := time.Now()
	return cl.get(client, now).AllowN(now, 1)
}

// Sweep drops buckets not used since now minus idle. A dropped client starts
// again with a full bucket, which is no more than it would have refilled to.
func (cl *clientLimiter) Sweep(now time.Time, idle time.Duration) {
	cutoff := now.Add(-idle).UnixNano()
	cl.buckets.Range(func(key, value any) bool {
		if value.(*clientBucket).lastSeen.Load() < cutoff {
			cl.buckets.Delete(key)
		}
		return true
	})
}

// Len returns the number of tracked clients.
func (cl *clientLimiter) Len() int {
	n := 0
	cl.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Run sweeps idle buckets every interval until ctx is done.
func (cl *clientLimiter) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			cl.Sweep(now, idle)
		case <-ctx.Done():
			return
		}
	}
}

// Middleware rejects requests over the client's budget with 429.
func (cl *clientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cl.burst))

		if !cl.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey is the request's remote host. Forwarding headers only reach
// RemoteAddr when the router runs RealIP, which it does only with
// FITNESS_TRUST_PROXY set.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
