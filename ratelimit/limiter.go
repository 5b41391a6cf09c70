package ratelimit

import (
	"sync"
	"time"
)

// Config configures a limiter.
type Config struct {
	// Window is the sliding window length (default: 15m).
	Window time.Duration `yaml:"window" mapstructure:"window"`
	// Ceiling is the maximum number of counted requests per key per window
	// (default: 5).
	Ceiling int `yaml:"ceiling" mapstructure:"ceiling"`
	// SweepInterval controls how often idle counters are evicted
	// (default: 5m).
	SweepInterval time.Duration `yaml:"sweep_interval" mapstructure:"sweep_interval"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Window == 0 {
		c.Window = 15 * time.Minute
	}
	if c.Ceiling == 0 {
		c.Ceiling = 5
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = 5 * time.Minute
	}
}

// Result is the outcome of a limit check.
type Result struct {
	Allowed bool
	// RetryAfter is how long until the key's window rolls over. Only
	// meaningful when Allowed is false.
	RetryAfter time.Duration
}

type counter struct {
	count       int
	windowStart time.Time
}

// Limiter is a process-wide, per-key request counter. All key mutation goes
// through a single mutex so concurrent requests for the same key cannot
// exceed the ceiling (no read-modify-write race).
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	ceiling  int

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a limiter and starts its background sweep of idle keys.
// Call Close when the limiter is no longer needed.
func New(cfg Config) *Limiter {
	cfg.ApplyDefaults()
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   cfg.Window,
		ceiling:  cfg.Ceiling,
		stop:     make(chan struct{}),
	}
	go l.sweep(cfg.SweepInterval)
	return l
}

// Close stops the background sweep.
func (l *Limiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Check consumes one unit of budget for the key.
func (l *Limiter) Check(key string) Result {
	res, _ := l.reserve(key)
	return res
}

// Reserve provisionally consumes one unit of budget for the key. When the
// result is Allowed, the returned Reservation may be released afterwards to
// return the unit (success-does-not-count mode, or abandonment on request
// cancellation). A denied reservation releases as a no-op.
func (l *Limiter) Reserve(key string) (Result, *Reservation) {
	return l.reserve(key)
}

func (l *Limiter) reserve(key string) (Result, *Reservation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, ok := l.counters[key]
	if !ok || now.Sub(c.windowStart) >= l.window {
		// First observation of the key, or an idle window elapsed: reset.
		c = &counter{windowStart: now}
		l.counters[key] = c
	}

	if c.count >= l.ceiling {
		retry := c.windowStart.Add(l.window).Sub(now)
		return Result{Allowed: false, RetryAfter: retry}, &Reservation{}
	}

	c.count++
	return Result{Allowed: true}, &Reservation{
		limiter:     l,
		key:         key,
		windowStart: c.windowStart,
	}
}

// release returns one unit to the key's counter, provided the window the
// reservation was taken in is still current.
func (l *Limiter) release(key string, windowStart time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counters[key]
	if !ok || !c.windowStart.Equal(windowStart) {
		return
	}
	if c.count > 0 {
		c.count--
	}
}

// sweep periodically evicts counters whose window has long elapsed.
func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.Sub(c.windowStart) >= l.window {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Reservation is a provisionally consumed unit of rate-limit budget.
type Reservation struct {
	limiter     *Limiter
	key         string
	windowStart time.Time
	released    sync.Once
}

// Release returns the reserved unit. Safe to call multiple times and on a
// denied reservation.
func (r *Reservation) Release() {
	r.released.Do(func() {
		if r.limiter != nil {
			r.limiter.release(r.key, r.windowStart)
		}
	})
}
