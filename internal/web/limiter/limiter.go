// Package limiter rate-limits per-IP form submissions (login attempts and
// contact messages).
package limiter

import (
	"sync"
	"time"
)

// Limiter allows max hits per IP within a sliding window.
type Limiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

// New creates a Limiter that allows max attempts per window.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
}

// Check returns true if the IP has not exceeded the rate limit.
// It does not record an attempt; call Record separately so successful
// submissions can stay free.
func (l *Limiter) Check(ip string) bool {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[ip]
	kept := hits[:0]

	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) == 0 {
		delete(l.attempts, ip)
	} else {
		l.attempts[ip] = kept
	}

	return len(kept) < l.max
}

// Record registers an attempt for the given IP.
func (l *Limiter) Record(ip string) {
	l.mu.Lock()
	l.attempts[ip] = append(l.attempts[ip], time.Now())
	l.mu.Unlock()
}
