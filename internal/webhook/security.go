package webhook

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var (
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrIPNotAllowed = errors.New("ip not allowed")
)

// Guard applies the IP allow list and per-client rate limits that sit in
// front of signature validation.
type Guard struct {
	allowed     []string
	networks    []*net.IPNet
	rateLimiter *rateLimiter
}

// NewGuard builds a Guard. Malformed CIDR entries are reported as errors.
func NewGuard(cfg SecurityConfig) (*Guard, error) {
	g := &Guard{}

	for _, entry := range cfg.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid allowed CIDR %q: %w", entry, err)
			}
			g.networks = append(g.networks, ipNet)
			continue
		}
		g.allowed = append(g.allowed, entry)
	}

	if cfg.RateLimitPerMin > 0 {
		g.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	return g, nil
}

// CheckIP returns ErrIPNotAllowed when an allow list is configured and ip is not on it.
func (g *Guard) CheckIP(ip string) error {
	if len(g.allowed) == 0 && len(g.networks) == 0 {
		return nil
	}

	for _, allowedIP := range g.allowed {
		if ip == allowedIP {
			return nil
		}
	}

	parsed := net.ParseIP(ip)
	if parsed != nil {
		for _, ipNet := range g.networks {
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit consumes one token for key.
func (g *Guard) CheckRateLimit(key string) error {
	if g.rateLimiter == nil {
		return nil
	}
	return g.rateLimiter.Allow(key)
}

// rateLimiter keeps one token bucket per key; idle keys expire from the LRU.
type rateLimiter struct {
	mu       sync.Mutex // guards get-or-create so each key gets exactly one bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

func (rl *rateLimiter) Allow(key string) error {
	limiter := rl.limiter(key)

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
