package memo

import (
	"slices"
	"sync"
	"sync/atomic"

	"runway-engine/internal/engine"
	"runway-engine/internal/model"
)

type entry struct {
	projection *model.Projection
	messages   []model.CalculationMessage
}

// DefaultLimit is the entry cap used when New is given a non-positive limit.
const DefaultLimit = 4096

// Cache memoizes successful computations keyed by ModelInputs equality.
// The computation is pure, so a hit is indistinguishable from a fresh run.
// Failed computations are not stored. Once limit entries are held, new
// inputs are computed but no longer stored.
type Cache struct {
	compute engine.ComputeFunc
	limit   int64
	entries sync.Map // model.ModelInputs -> entry
	size    atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

// New returns a cache in front of compute holding at most limit entries.
// A nil compute uses engine.Compute; limit <= 0 uses DefaultLimit.
func New(compute engine.ComputeFunc, limit int) *Cache {
	if compute == nil {
		compute = engine.Compute
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Cache{compute: compute, limit: int64(limit)}
}

// Compute has the engine.ComputeFunc signature so a Cache can stand in for the engine.
func (c *Cache) Compute(in model.ModelInputs) (*model.Projection, []model.CalculationMessage, error) {
	if v, ok := c.entries.Load(in); ok {
		c.hits.Add(1)
		return clone(v.(entry))
	}
	c.misses.Add(1)

	p, msgs, err := c.compute(in)
	if err != nil {
		return p, msgs, err
	}

	if !c.reserve() {
		return p, msgs, nil
	}
	e := entry{projection: p, messages: msgs}
	if _, loaded := c.entries.LoadOrStore(in, e); loaded {
		c.size.Add(-1)
	}
	return clone(e)
}

// reserve claims a slot for one new entry, failing once the cache is full.
func (c *Cache) reserve() bool {
	for {
		n := c.size.Load()
		if n >= c.limit {
			return false
		}
		if c.size.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	return int(c.size.Load())
}

// Stats reports cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// clone hands each caller its own rows and messages.
func clone(e entry) (*model.Projection, []model.CalculationMessage, error) {
	p := *e.projection
	p.Rows = slices.Clone(e.projection.Rows)
	return &p, slices.Clone(e.messages), nil
}
