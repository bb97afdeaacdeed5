package hierarchy

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves the children of one scope from the remote system.
// It is pure I/O: no caching, no retries.
type Fetcher interface {
	FetchScope(ctx context.Context, scope Scope) ([]Node, error)
}

// entry is one cached scope snapshot. Entries are replaced wholesale, never
// updated in place, so a reader holding the *Tree keeps a consistent view
// regardless of concurrent invalidation.
type entry struct {
	tree      *Tree
	fetchedAt time.Time
}

// Cache is the process-wide hierarchy cache: scope snapshots populated
// lazily on first access, shared by concurrent readers, and removed by
// explicit invalidation after mutations. There is no time-based expiry —
// structure changes originate from mutation calls this process issues, and
// those invalidate before returning.
type Cache struct {
	fetcher Fetcher
	log     *zap.Logger

	mu      sync.RWMutex
	entries map[Scope]*entry
	// gens fences in-flight fetches against invalidation: a fetch records
	// the scope's generation before hitting the network and only stores its
	// result if no Invalidate bumped it in the meantime. Keys persist for
	// the process lifetime, bounded by the number of scopes ever fetched.
	gens map[Scope]uint64

	flight singleflight.Group
}

// NewCache creates an empty cache backed by the given fetcher.
func NewCache(fetcher Fetcher, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		fetcher: fetcher,
		log:     log,
		entries: make(map[Scope]*entry),
		gens:    make(map[Scope]uint64),
	}
}

// GetScope returns the cached tree for scope, fetching it first if absent.
// Concurrent callers missing on the same scope share a single in-flight
// fetch. A caller whose context is cancelled stops waiting, but the fetch
// itself runs to completion and populates the entry for future callers.
// Failed fetches are not stored; the scope stays unpopulated for retry.
func (c *Cache) GetScope(ctx context.Context, scope Scope) (*Tree, error) {
	c.mu.RLock()
	e, ok := c.entries[scope]
	c.mu.RUnlock()
	if ok {
		return e.tree, nil
	}

	// Detach the fetch from this caller's cancellation: one waiter giving
	// up must not abort the fetch the other waiters share.
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.flight.DoChan(scope.Key(), func() (any, error) {
		// A previous flight may have populated the scope between our miss
		// and this call being scheduled.
		c.mu.Lock()
		if e, ok := c.entries[scope]; ok {
			c.mu.Unlock()
			return e.tree, nil
		}
		// Record the generation before fetching. Writing it back materializes
		// the key so InvalidateAll can bump it while we are on the network.
		gen := c.gens[scope]
		c.gens[scope] = gen
		c.mu.Unlock()

		nodes, err := c.fetcher.FetchScope(fetchCtx, scope)
		if err != nil {
			return nil, &UpstreamError{Scope: scope, Err: err}
		}
		tree := NewTree(nodes)

		c.mu.Lock()
		superseded := c.gens[scope] != gen
		if !superseded {
			c.entries[scope] = &entry{tree: tree, fetchedAt: time.Now()}
		}
		c.mu.Unlock()

		if superseded {
			// The scope was invalidated while the fetch was in flight. The
			// waiters already sharing it still get this tree, but storing it
			// would serve pre-mutation state to every later read.
			c.log.Debug("hierarchy fetch superseded by invalidation",
				zap.String("scope", scope.Key()))
			return tree, nil
		}

		c.log.Debug("hierarchy scope populated",
			zap.String("scope", scope.Key()),
			zap.Int("nodes", tree.Len()))
		return tree, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Tree), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate removes the entry for scope, if cached. The next GetScope for
// it fetches fresh state. Callers must invalidate every scope whose
// membership a mutation could have changed — the cache does not infer
// ancestor relationships.
func (c *Cache) Invalidate(scope Scope) {
	c.mu.Lock()
	_, had := c.entries[scope]
	delete(c.entries, scope)
	c.gens[scope]++
	c.mu.Unlock()

	// A fetch already in flight predates the mutation; drop its flight key
	// so later callers start a fresh one instead of joining it.
	c.flight.Forget(scope.Key())

	if had {
		c.log.Debug("hierarchy scope invalidated", zap.String("scope", scope.Key()))
	}
}

// InvalidateAll clears every entry. Used when a mutation's blast radius is
// unknown, such as deleting a space with nested folders, lists, and views.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[Scope]*entry)
	keys := make([]string, 0, len(c.gens))
	for s := range c.gens {
		c.gens[s]++
		keys = append(keys, s.Key())
	}
	c.mu.Unlock()

	for _, k := range keys {
		c.flight.Forget(k)
	}

	if n > 0 {
		c.log.Debug("hierarchy cache cleared", zap.Int("entries", n))
	}
}
