package shopkeep

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const buildKey = "report"

// BuildFunc computes a fresh result for the cache.
type BuildFunc func(ctx context.Context) (*Result, error)

// ReportCache holds the latest computed result for the HTTP API.
type ReportCache struct {
	build BuildFunc
	ttl   time.Duration

	mu     sync.RWMutex
	result *Result
	built  time.Time
	// gen advances on every invalidation; builds started earlier are discarded.
	gen uint64

	sf singleflight.Group
}

// NewReportCache creates a cache whose entries expire after ttl.
// A zero ttl disables caching.
func NewReportCache(build BuildFunc, ttl time.Duration) *ReportCache {
	return &ReportCache{build: build, ttl: ttl}
}

func (c *ReportCache) fresh() (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.result == nil || c.ttl == 0 || time.Since(c.built) > c.ttl {
		return nil, false
	}
	return c.result, true
}

// Get returns the cached result, or builds one if it is missing or expired.
// Concurrent callers share a single build, which runs detached from the
// cancellation of whichever caller started it.
func (c *ReportCache) Get(ctx context.Context) (*Result, error) {
	if res, ok := c.fresh(); ok {
		return res, nil
	}
	return c.load(ctx, false)
}

// Invalidate drops the cached result and any build still in flight.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	c.result = nil
	c.gen++
	c.mu.Unlock()
}

// Refresh forces a rebuild. A build already in flight may have read the
// workspace before the refresh, so it is not joined.
func (c *ReportCache) Refresh(ctx context.Context) (*Result, error) {
	c.Invalidate()
	c.sf.Forget(buildKey)
	return c.load(ctx, true)
}

func (c *ReportCache) load(ctx context.Context, force bool) (*Result, error) {
	ctx = context.WithoutCancel(ctx)
	v, err, _ := c.sf.Do(buildKey, func() (interface{}, error) {
		// Another caller may have finished a build while we waited.
		if !force {
			if res, ok := c.fresh(); ok {
				return res, nil
			}
		}
		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		res, err := c.build(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if gen == c.gen {
			c.result = res
			c.built = time.Now()
		}
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}
