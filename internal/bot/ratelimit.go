package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-user bucket is kept.
const idleLimiterTTL = 10 * time.Minute

type userBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserLimiter is a token bucket per user ID. A nil *UserLimiter allows everything.
type UserLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets map[string]*userBucket
	now     func() time.Time
}

// NewUserLimiter returns a limiter allowing perSecond commands per user with
// the given burst. It returns nil when perSecond is not positive.
func NewUserLimiter(perSecond float64, burst int) *UserLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &UserLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		buckets: make(map[string]*userBucket),
		now:     time.Now,
	}
}

// Allow reports whether userID may run a command now.
func (l *UserLimiter) Allow(userID string) bool {
	if l == nil {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[userID]
	if !ok {
		b = &userBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[userID] = b
	}
	b.lastSeen = now
	l.evictIdle(now)

	return b.limiter.AllowN(now, 1)
}

// evictIdle drops buckets that have not been used for idleLimiterTTL.
// Caller must hold l.mu.
func (l *UserLimiter) evictIdle(now time.Time) {
	for id, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleLimiterTTL {
			delete(l.buckets, id)
		}
	}
}
