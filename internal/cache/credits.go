// Package cache memoizes item credit listings for the life of the process.
package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/metrics"
)

// CreditFetcher loads credits from the catalog. ok is false when the catalog
// had nothing to say.
type CreditFetcher interface {
	Credits(ctx context.Context, itemID int64) (*domain.Credits, bool)
}

var errNoCredits = errors.New("no credits")

// Credits is a lazily populated item -> credits map. Concurrent lookups of
// the same uncached item share one catalog call. Failed lookups are not
// stored, so a later call may succeed.
type Credits struct {
	fetcher CreditFetcher

	mu      sync.RWMutex
	entries map[int64]*domain.Credits

	group singleflight.Group
}

func NewCredits(fetcher CreditFetcher) *Credits {
	return &Credits{
		fetcher: fetcher,
		entries: make(map[int64]*domain.Credits),
	}
}

// Get returns the credits of itemID, from memory when possible.
func (c *Credits) Get(ctx context.Context, itemID int64) (*domain.Credits, bool) {
	c.mu.RLock()
	cached, ok := c.entries[itemID]
	c.mu.RUnlock()
	if ok {
		metrics.CreditCacheHits.Inc()
		return cached, true
	}
	metrics.CreditCacheMisses.Inc()

	// The shared fetch outlives any one caller; each caller stops waiting
	// when its own context ends.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.FormatInt(itemID, 10), func() (any, error) {
		credits, ok := c.fetcher.Credits(fetchCtx, itemID)
		if !ok || credits == nil {
			return nil, errNoCredits
		}
		c.mu.Lock()
		c.entries[itemID] = credits
		size := len(c.entries)
		c.mu.Unlock()
		metrics.CreditCacheEntries.Set(float64(size))
		return credits, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, false
		}
		return res.Val.(*domain.Credits), true
	case <-ctx.Done():
		return nil, false
	}
}

// Len is the number of cached items.
func (c *Credits) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
