package bdd

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Every memoized operation below replaces one of the teacher's fixed-size,
// open-addressed, manually-hashed tables (applycache/itecache/quantcache/...
// in cache.go, keyed by hand-rolled _PAIR/_TRIPLE) with a generic LRU cache
// keyed on a small comparable struct. Go's map (inside lru.Cache) already
// does the hashing; eviction replaces the teacher's resize-on-GC policy,
// which this package has no use for since a Store never reclaims nodes.

type iteKey struct {
	f, g, h Handle
}

type notKey struct {
	h Handle
}

type restrictKey struct {
	h   Handle
	lit Handle // the literal being restricted to: var*2 (+0 true, +1 false), see literal
}

// quantKey memoizes Exists/Forall. varsHash is the xxhash digest of the
// roaring bitmap naming the quantified variables: bitmaps are not
// comparable, so a digest stands in for one the same way the teacher's
// quantsetID stood in for a cube of quantified node edges.
type quantKey struct {
	h         Handle
	universal bool
	varsHash  uint64
}

type opcache struct {
	ite      *lru.Cache[iteKey, Handle]
	not      *lru.Cache[notKey, Handle]
	restrict *lru.Cache[restrictKey, Handle]
	quant    *lru.Cache[quantKey, Handle]

	iteHit, iteMiss           int
	notHit, notMiss           int
	restrictHit, restrictMiss int
	quantHit, quantMiss       int
}

func newOpcache(size int) *opcache {
	c := &opcache{}
	c.ite, _ = lru.New[iteKey, Handle](size)
	c.not, _ = lru.New[notKey, Handle](size)
	c.restrict, _ = lru.New[restrictKey, Handle](size)
	c.quant, _ = lru.New[quantKey, Handle](size)
	return c
}

func (c *opcache) matchIte(k iteKey) (Handle, bool) {
	h, ok := c.ite.Get(k)
	if ok {
		c.iteHit++
	} else {
		c.iteMiss++
	}
	return h, ok
}

func (c *opcache) setIte(k iteKey, res Handle) Handle {
	c.ite.Add(k, res)
	return res
}

func (c *opcache) matchNot(k notKey) (Handle, bool) {
	h, ok := c.not.Get(k)
	if ok {
		c.notHit++
	} else {
		c.notMiss++
	}
	return h, ok
}

func (c *opcache) setNot(k notKey, res Handle) Handle {
	c.not.Add(k, res)
	return res
}

func (c *opcache) matchRestrict(k restrictKey) (Handle, bool) {
	h, ok := c.restrict.Get(k)
	if ok {
		c.restrictHit++
	} else {
		c.restrictMiss++
	}
	return h, ok
}

func (c *opcache) setRestrict(k restrictKey, res Handle) Handle {
	c.restrict.Add(k, res)
	return res
}

func (c *opcache) matchQuant(k quantKey) (Handle, bool) {
	h, ok := c.quant.Get(k)
	if ok {
		c.quantHit++
	} else {
		c.quantMiss++
	}
	return h, ok
}

func (c *opcache) setQuant(k quantKey, res Handle) Handle {
	c.quant.Add(k, res)
	return res
}

// reset drops every memoized entry, the counterpart of the teacher's
// cachereset. No operation in this package calls it.
func (c *opcache) reset() {
	c.ite.Purge()
	c.not.Purge()
	c.restrict.Purge()
	c.quant.Purge()
}

func (c *opcache) String() string {
	return fmt.Sprintf(
		"ite: %d/%d len=%d, not: %d/%d len=%d, restrict: %d/%d len=%d, quant: %d/%d len=%d",
		c.iteHit, c.iteHit+c.iteMiss, c.ite.Len(),
		c.notHit, c.notHit+c.notMiss, c.not.Len(),
		c.restrictHit, c.restrictHit+c.restrictMiss, c.restrict.Len(),
		c.quantHit, c.quantHit+c.quantMiss, c.quant.Len(),
	)
}
