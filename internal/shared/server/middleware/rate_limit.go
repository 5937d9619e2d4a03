package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/respond"
)

// Rate limit groups. Writes run the engine and append versions; reads are cheap.
const (
	GroupWrite = "WRITE"
	GroupRead  = "READ"
)

// RateLimitRule is a token bucket: Rate tokens per second up to Burst.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// RateLimitConfig selects a rule per request group. Requests whose group has
// no rule are not limited.
type RateLimitConfig struct {
	Rules    map[string]RateLimitRule
	GroupFor func(*gin.Context) string
	Limiter  *RateLimiter
}

// RateLimitSweepInterval is how often idle buckets are pruned.
const RateLimitSweepInterval = time.Minute

// RateLimiter holds one bucket per client and group. Buckets that have
// refilled to their full burst are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	now       func() time.Time
	lastSweep time.Time
}

type rateBucket struct {
	tokens float64
	last   time.Time
	rule   RateLimitRule
}

func (b *rateBucket) full(now time.Time) bool {
	elapsed := now.Sub(b.last).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return b.tokens+elapsed*b.rule.Rate >= float64(b.rule.Burst)
}

// NewRateLimiter builds a limiter; now defaults to time.Now.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets:   make(map[string]*rateBucket),
		now:       now,
		lastSweep: now(),
	}
}

// Len reports how many buckets are currently tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep drops full buckets; a dropped bucket is recreated full on next use.
// Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < RateLimitSweepInterval {
		return
	}
	l.lastSweep = now
	for key, bucket := range l.buckets {
		if bucket.full(now) {
			delete(l.buckets, key)
		}
	}
}

// GroupByMethod puts POST requests in GroupWrite and everything else in GroupRead.
func GroupByMethod(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		return GroupWrite
	}
	return GroupRead
}

// RateLimit rejects requests over their group's budget with 429 and Retry-After.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	if cfg.GroupFor == nil {
		cfg.GroupFor = GroupByMethod
	}
	return func(c *gin.Context) {
		group := strings.TrimSpace(cfg.GroupFor(c))
		rule, ok := cfg.Rules[group]
		if !ok {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.ClientIP()) + "|" + group
		allowed, retryAfter := cfg.Limiter.Allow(key, rule)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, respond.CodeRateLimited, "Too many requests", gin.H{
			"retry_after_ms": retryAfterMs,
		})
	}
}

// Allow spends one token from key's bucket, reporting how long to wait when empty.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweep(now)
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &rateBucket{tokens: float64(rule.Burst), last: now}
		l.buckets[key] = bucket
	}
	bucket.rule = rule
	if elapsed := now.Sub(bucket.last).Seconds(); elapsed > 0 {
		bucket.tokens = math.Min(float64(rule.Burst), bucket.tokens+elapsed*rule.Rate)
		bucket.last = now
	}
	if bucket.tokens >= 1 {
		bucket.tokens--
		return true, 0
	}
	wait := (1 - bucket.tokens) / rule.Rate
	return false, time.Duration(math.Ceil(wait*1000.0)) * time.Millisecond
}
