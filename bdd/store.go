package bdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// _MAXVAR bounds the number of variables a single Store can hold. The level
// field of node is an int32; this keeps level, and level+1 used as the
// terminal sentinel level, comfortably inside it.
const _MAXVAR = 1 << 20

// Store is a Reduced Ordered Binary Decision Diagram over a fixed variable
// ordering, fixed at construction time by New. It generalizes the teacher's
// choice between a "Hudd" hashmap-backed implementation and a "BuDDy"
// array-backed one (selected with a build tag) down to a single backend: a
// plain Go map is the unique table, and the node table only ever grows.
//
// A Store is not safe for concurrent use; callers that want to explore
// independent parts of a search space concurrently should give each
// goroutine its own Store (see cmd/qrobdd's benchmark runner, which does
// exactly that with errgroup).
type Store struct {
	varnum int32
	nodes  []node
	unique map[nodeKey]Handle
	vars   []Handle // vars[i] is the Handle of the positive literal for variable i

	cache *opcache
	conf  *configs
	err   error

	produced int // total branch nodes ever allocated; the two terminals are not counted
}

// New creates a Store with varnum variables, numbered 0..varnum-1 and
// levels assigned in that same order (level i sits above level i+1). Use
// the order package to derive a sensible numbering from a parsed formula
// before calling New; Store itself does not reorder variables once
// created.
func New(varnum int, opts ...Option) (*Store, error) {
	if varnum < 0 || varnum > _MAXVAR {
		return nil, errors.Wrapf(ErrBadVariable, "bad number of variables (%d)", varnum)
	}
	conf := makeconfigs(varnum)
	for _, opt := range opts {
		opt(conf)
	}

	s := &Store{
		varnum: int32(varnum),
		conf:   conf,
	}
	s.nodes = make([]node, 2, conf.nodesize)
	s.nodes[False] = node{level: s.varnum, low: False, high: False}
	s.nodes[True] = node{level: s.varnum, low: True, high: True}
	s.unique = make(map[nodeKey]Handle, conf.nodesize)
	s.cache = newOpcache(conf.cachesize)

	s.vars = make([]Handle, varnum)
	for v := 0; v < varnum; v++ {
		s.vars[v] = s.allocnode(int32(v), False, True)
	}
	if s.err != nil {
		return nil, s.err
	}
	s.debugf("new store: %d variables, %d initial node capacity", varnum, conf.nodesize)
	return s, nil
}

// Varnum returns the number of variables the store was created with.
func (s *Store) Varnum() int {
	return int(s.varnum)
}

// Var returns the Handle of the positive literal for variable v. Panics if
// v is outside [0, Varnum).
func (s *Store) Var(v int) Handle {
	return s.vars[v]
}

// Size returns the number of live node slots currently allocated.
func (s *Store) Size() int {
	return len(s.nodes)
}

// level, low and high read the fields of an internal node. The terminals
// live at the reserved indices 0 and 1 and report their own level,
// Varnum(), as a sentinel greater than any real variable's level.
func (s *Store) level(h Handle) int32 {
	return s.nodes[h].level
}

func (s *Store) low(h Handle) Handle {
	return s.nodes[h].low
}

func (s *Store) high(h Handle) Handle {
	return s.nodes[h].high
}

func (s *Store) isTerminal(h Handle) bool {
	return h == False || h == True
}

// allocnode returns the Handle for (level, low, high), reusing an existing
// node if one with that exact key already exists (hash-consing), else
// appending a fresh one. This is the teacher's setnode/nodehash pair
// collapsed into the map's own hashing. Like the rest of the package's
// operations, it reports exhaustion through the store's sticky error (Err,
// Errored) rather than a second return value, so it composes directly with
// Ite/Restrict/Exists/Forall.
func (s *Store) allocnode(level int32, low, high Handle) Handle {
	if low == high {
		return low
	}
	key := nodeKey{level: level, low: low, high: high}
	if h, ok := s.unique[key]; ok {
		return h
	}
	if s.conf.maxnodesize != 0 && len(s.nodes) >= s.conf.maxnodesize {
		return s.fail(ErrResourceExhausted, "node table limit of %d reached", s.conf.maxnodesize)
	}
	h := Handle(len(s.nodes))
	s.nodes = append(s.nodes, node{level: level, low: low, high: high})
	s.unique[key] = h
	s.produced++
	s.tracef("alloc node %d: level=%d low=%d high=%d", h, level, low, high)
	return h
}

// Stats returns a short human-readable summary of the store's memory use
// and cache hit rates, in the spirit of the teacher's BDD.Stats.
func (s *Store) Stats() string {
	res := fmt.Sprintf("nodes: %d (produced %d)\nvariables: %d\n", len(s.nodes), s.produced, s.varnum)
	res += "caches: " + s.cache.String() + "\n"
	return res
}
