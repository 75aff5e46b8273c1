package bdd

import "go.uber.org/zap"

// configs collects the tunable parameters of a Store, set at construction
// time via the option functions below. Unset fields keep the zero value
// documented on each option.
type configs struct {
	varnum      int // number of variables, fixed for the lifetime of the store
	nodesize    int // initial capacity of the node table
	cachesize   int // capacity of each operation memo cache (Ite, Restrict, ...)
	maxnodesize int // hard cap on the node table (0: unbounded)
	logger      *zap.SugaredLogger
}

const _DEFAULTCACHESIZE = 10000

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:    varnum,
		nodesize:  2*varnum + 2,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// Option configures a Store at construction time. See New.
type Option func(*configs)

// WithNodesize sets a preferred initial capacity for the node table. The
// table grows past this as needed; a larger value only avoids early
// reallocation for problems known to be large ahead of time.
func WithNodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// WithMaxNodes caps the total number of nodes a Store may allocate. An
// operation that would grow the table past this limit fails with
// ErrResourceExhausted instead of growing further. The default, 0, means no
// limit: allocation can then exhaust available memory on pathological
// input.
func WithMaxNodes(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// WithCachesize sets the capacity of each of the per-operation LRU memo
// caches (Ite, Restrict, Exists, Forall, ...). The default is 10 000
// entries, adequate for small to medium formulas; large combinatorial
// benchmarks (n-queens, clique search) benefit from a larger value.
func WithCachesize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// WithLogger attaches a zap logger the store uses to emit debug-level trace
// of store creation, sticky errors, and (in builds with the "debug" tag)
// node allocation. Cache hits and misses are counted, not logged. Without
// it, a store logs nothing.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *configs) {
		c.logger = l
	}
}
