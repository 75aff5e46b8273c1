// Package counting compiles cardinality comparisons over a vector of BDD
// handles — "at least/at most/exactly k of these hold" and vector-vs-vector
// comparisons — into ordinary bdd.Ite/And/Or operations. It never inspects
// variable identities or ordering: the encoding is purely structural over
// the handles it is given.
package counting

import (
	"fmt"
	"strings"

	"github.com/arnegrid/qrobdd/bdd"
)

type kind int

const (
	kindAtLeast kind = iota
	kindAtMost
)

// cache memoizes AtLeast/AtMost results, keyed by kind, the exact handle
// vector (never sorted or deduplicated: a repeated handle counts once per
// occurrence, and the key keeps the order as given even though the encoded
// function does not depend on it) and k. The key is a string built from the
// handles rather than a slice, since Go slices aren't comparable map keys.
type cache struct {
	store *bdd.Store
	memo  map[string]bdd.Handle
}

func newCache(s *bdd.Store) *cache {
	return &cache{store: s, memo: make(map[string]bdd.Handle)}
}

func cacheKey(k kind, e []bdd.Handle, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d/", k, n)
	for _, h := range e {
		fmt.Fprintf(&b, "%d,", h)
	}
	return b.String()
}

// AtLeast returns the handle for "at least k of e hold".
func AtLeast(s *bdd.Store, e []bdd.Handle, k int) bdd.Handle {
	return newCache(s).atLeast(e, k)
}

// AtMost returns the handle for "at most k of e hold".
func AtMost(s *bdd.Store, e []bdd.Handle, k int) bdd.Handle {
	return newCache(s).atMost(e, k)
}

// Exactly returns the handle for "exactly k of e hold".
func Exactly(s *bdd.Store, e []bdd.Handle, k int) bdd.Handle {
	c := newCache(s)
	return c.store.And(c.atLeast(e, k), c.atMost(e, k))
}

func (c *cache) atLeast(e []bdd.Handle, k int) bdd.Handle {
	if k <= 0 {
		return bdd.True
	}
	if len(e) == 0 {
		return bdd.False
	}
	key := cacheKey(kindAtLeast, e, k)
	if h, ok := c.memo[key]; ok {
		return h
	}
	h := c.store.Ite(e[0], c.atLeast(e[1:], k-1), c.atLeast(e[1:], k))
	c.memo[key] = h
	return h
}

func (c *cache) atMost(e []bdd.Handle, k int) bdd.Handle {
	if k < 0 {
		return bdd.False
	}
	if len(e) == 0 {
		return bdd.True
	}
	if k >= len(e) {
		return bdd.True
	}
	key := cacheKey(kindAtMost, e, k)
	if h, ok := c.memo[key]; ok {
		return h
	}
	h := c.store.Ite(e[0], c.atMost(e[1:], k-1), c.atMost(e[1:], k))
	c.memo[key] = h
	return h
}

// Compare encodes e ⊙ k for an arbitrary comparator, reducing to
// AtLeast/AtMost/Exactly combinations. An out-of-range k (outside
// [0,len(e)]) is not an error: it yields the trivial ⊤/⊥ result the
// comparator implies.
func Compare(s *bdd.Store, e []bdd.Handle, cmp string, k int) bdd.Handle {
	c := newCache(s)
	switch cmp {
	case "=":
		return c.store.And(c.atLeast(e, k), c.atMost(e, k))
	case "!=":
		return c.store.Not(c.store.And(c.atLeast(e, k), c.atMost(e, k)))
	case "<":
		return c.atMost(e, k-1)
	case "<=":
		return c.atMost(e, k)
	case ">":
		return c.atLeast(e, k+1)
	case ">=":
		return c.atLeast(e, k)
	}
	return bdd.False
}

// residual flips a comparator the way fixing Count(e)=k and asking for
// Count(f)'s relation to k requires: "e < f" becomes, for a fixed k = e's
// count, "f > k"; equality and inequality are unchanged since they're
// symmetric in k.
func residual(cmp string) string {
	switch cmp {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	}
	return cmp
}

// CompareVectors encodes Count(e) ⊙ Count(f) as a disjunction, over every
// possible count k of e, of "e counts exactly k" and "f satisfies the
// residual comparison against k".
func CompareVectors(s *bdd.Store, e, f []bdd.Handle, cmp string) bdd.Handle {
	maxN := len(e)
	if len(f) > maxN {
		maxN = len(f)
	}
	res := residual(cmp)
	terms := make([]bdd.Handle, 0, maxN+1)
	for k := 0; k <= maxN; k++ {
		exact := Exactly(s, e, k)
		side := Compare(s, f, res, k)
		terms = append(terms, s.And(exact, side))
	}
	return s.Or(terms...)
}
