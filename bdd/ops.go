package bdd

import (
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cespare/xxhash/v2"
)

// min3 returns the smallest of p, q and r, used by Ite to pick the level to
// branch on next.
func min3(p, q, r int32) int32 {
	m := p
	if q < m {
		m = q
	}
	if r < m {
		m = r
	}
	return m
}

// Not returns the negation of h.
func (s *Store) Not(h Handle) Handle {
	return s.not(h)
}

func (s *Store) not(h Handle) Handle {
	if h == False {
		return True
	}
	if h == True {
		return False
	}
	key := notKey{h: h}
	if res, ok := s.cache.matchNot(key); ok {
		return res
	}
	low := s.not(s.low(h))
	high := s.not(s.high(h))
	res := s.allocnode(s.level(h), low, high)
	return s.cache.setNot(key, res)
}

// iteLow and iteHigh pick which child of n to follow while computing Ite:
// a node whose level p is greater than either other operand's level
// contributes itself unchanged (it has not been "reached" yet), otherwise
// its own branch.
func (s *Store) iteLow(p, q, r int32, n Handle) Handle {
	if p > q || p > r {
		return n
	}
	return s.low(n)
}

func (s *Store) iteHigh(p, q, r int32, n Handle) Handle {
	if p > q || p > r {
		return n
	}
	return s.high(n)
}

// Ite computes if-then-else: (f /\ g) \/ (not f /\ h), in one pass rather
// than as three separate operations.
func (s *Store) Ite(f, g, h Handle) Handle {
	return s.ite(f, g, h)
}

func (s *Store) ite(f, g, h Handle) Handle {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == h:
		return g
	case g == True && h == False:
		return f
	case g == False && h == True:
		return s.not(f)
	}
	key := iteKey{f: f, g: g, h: h}
	if res, ok := s.cache.matchIte(key); ok {
		return res
	}
	p, q, r := s.level(f), s.level(g), s.level(h)
	low := s.ite(s.iteLow(p, q, r, f), s.iteLow(q, p, r, g), s.iteLow(r, p, q, h))
	high := s.ite(s.iteHigh(p, q, r, f), s.iteHigh(q, p, r, g), s.iteHigh(r, p, q, h))
	res := s.allocnode(min3(p, q, r), low, high)
	return s.cache.setIte(key, res)
}

// literal encodes a restriction target as a single comparable value: the
// literal var<<1 for the positive assignment, or var<<1|1 for the negated
// one. Packing it this way keeps restrictKey two Handles wide instead of
// three.
func literal(v int, val bool) Handle {
	l := Handle(v) << 1
	if !val {
		l |= 1
	}
	return l
}

// Restrict substitutes the constant val for variable v throughout h,
// returning the resulting Handle. It generalizes the teacher's Replace (a
// whole-level renaming pass) down to a single-variable assignment, reusing
// the same top-down, level-ordered recursion.
func (s *Store) Restrict(h Handle, v int, val bool) Handle {
	if v < 0 || v >= int(s.varnum) {
		return s.fail(ErrBadVariable, "restrict: variable %d out of range", v)
	}
	return s.restrict(h, int32(v), val)
}

func (s *Store) restrict(h Handle, v int32, val bool) Handle {
	if s.isTerminal(h) || s.level(h) > v {
		return h
	}
	lit := literal(int(v), val)
	key := restrictKey{h: h, lit: lit}
	if res, ok := s.cache.matchRestrict(key); ok {
		return res
	}
	var res Handle
	if s.level(h) == v {
		if val {
			res = s.restrict(s.high(h), v, val)
		} else {
			res = s.restrict(s.low(h), v, val)
		}
	} else {
		low := s.restrict(s.low(h), v, val)
		high := s.restrict(s.high(h), v, val)
		res = s.allocnode(s.level(h), low, high)
	}
	return s.cache.setRestrict(key, res)
}

// varsDigest folds a roaring bitmap of quantified variables to a single
// uint64, the same role the teacher's quantsetID played in its quantcache:
// a cheap stand-in identity for "this exact variable set" so the
// quantification cache does not need to store whole bitmaps as keys.
func varsDigest(vars *roaring.Bitmap) uint64 {
	b, err := vars.ToBytes()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}

// Exists computes the existential quantification of h over vars, per
// exists(a,{v} \u V') = or(exists(restrict(a,v,true),V'), exists(restrict(a,v,false),V')),
// folded bottom-up over the shared node structure instead of one variable
// at a time, the same optimization the teacher's quant applies to Exist.
func (s *Store) Exists(h Handle, vars *roaring.Bitmap) Handle {
	if vars.IsEmpty() {
		return h
	}
	return s.quant(h, vars, vars.Maximum(), varsDigest(vars), false)
}

// Forall computes the universal quantification of h over vars, the dual of
// Exists with conjunction in place of disjunction at each quantified level.
func (s *Store) Forall(h Handle, vars *roaring.Bitmap) Handle {
	if vars.IsEmpty() {
		return h
	}
	return s.quant(h, vars, vars.Maximum(), varsDigest(vars), true)
}

func (s *Store) quant(h Handle, vars *roaring.Bitmap, last uint32, digest uint64, universal bool) Handle {
	if s.isTerminal(h) || uint32(s.level(h)) > last {
		return h
	}
	key := quantKey{h: h, universal: universal, varsHash: digest}
	if res, ok := s.cache.matchQuant(key); ok {
		return res
	}
	low := s.quant(s.low(h), vars, last, digest, universal)
	high := s.quant(s.high(h), vars, last, digest, universal)
	var res Handle
	if vars.Contains(uint32(s.level(h))) {
		if universal {
			res = s.ite(low, high, False)
		} else {
			res = s.ite(low, True, high)
		}
	} else {
		res = s.allocnode(s.level(h), low, high)
	}
	return s.cache.setQuant(key, res)
}

// Sat reports whether h is satisfiable, i.e. not identically False.
func (s *Store) Sat(h Handle) bool {
	return h != False
}

// AnyModel returns one satisfying assignment of h as a map from variable
// index to its assigned truth value, and false if h is unsatisfiable. The
// assignment is one path from the root to True, following the low child
// wherever it is not False and the high child otherwise. Only the variables
// on that path appear in the map; the others are don't-care.
func (s *Store) AnyModel(h Handle) (map[int]bool, bool) {
	if h == False {
		return nil, false
	}
	m := make(map[int]bool)
	for h != True {
		low := s.low(h)
		m[int(s.level(h))] = low == False
		if low != False {
			h = low
		} else {
			h = s.high(h)
		}
	}
	return m, true
}

// ModelIter pulls successive satisfying assignments of a Handle one at a
// time. Unlike the teacher's Allsat, which drives a caller-supplied
// callback, ModelIter is pull-based: call Next until it returns false. Each
// returned assignment gives -1 for don't-care variables, mirroring the
// profile slice the teacher's Allsat passed to its callback.
type ModelIter struct {
	s      *Store
	varnum int
	stack  []iterFrame
	done   bool
}

type iterFrame struct {
	h    Handle
	prof []int
	dir  int // 0: about to descend low, 1: about to descend high, 2: exhausted
}

// Models returns a ModelIter over every satisfying assignment of h.
func (s *Store) Models(h Handle) *ModelIter {
	prof := make([]int, s.varnum)
	for i := range prof {
		prof[i] = -1
	}
	it := &ModelIter{s: s, varnum: int(s.varnum)}
	if h == False {
		it.done = true
		return it
	}
	it.stack = []iterFrame{{h: h, prof: prof, dir: 0}}
	return it
}

// Next advances the iterator to the next satisfying assignment, returning
// it together with true, or (nil, false) once every assignment has been
// produced.
func (it *ModelIter) Next() ([]int, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		h := top.h
		if h == True {
			res := make([]int, len(top.prof))
			copy(res, top.prof)
			it.stack = it.stack[:len(it.stack)-1]
			return res, true
		}
		if h == False {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		switch top.dir {
		case 0:
			top.dir = 1
			if low := it.s.low(h); low != False {
				child := append([]int{}, top.prof...)
				child[it.s.level(h)] = 0
				it.stack = append(it.stack, iterFrame{h: low, prof: child, dir: 0})
			}
		case 1:
			top.dir = 2
			if high := it.s.high(h); high != False {
				child := append([]int{}, top.prof...)
				child[it.s.level(h)] = 1
				it.stack = append(it.stack, iterFrame{h: high, prof: child, dir: 0})
			}
		default:
			it.stack = it.stack[:len(it.stack)-1]
		}
	}
	return nil, false
}

// Satcount counts the number of satisfying assignments of h over all
// Varnum() variables, using arbitrary-precision arithmetic since the count
// can exceed 2^63 well before the formula does.
func (s *Store) Satcount(h Handle) *big.Int {
	res := big.NewInt(0)
	if h == False {
		return res
	}
	res.SetBit(res, int(s.level(h)), 1)
	memo := make(map[Handle]*big.Int)
	return res.Mul(res, s.satcount(h, memo))
}

func (s *Store) satcount(h Handle, memo map[Handle]*big.Int) *big.Int {
	if h == False {
		return big.NewInt(0)
	}
	if h == True {
		return big.NewInt(1)
	}
	if res, ok := memo[h]; ok {
		return res
	}
	level := s.level(h)
	low, high := s.low(h), s.high(h)

	res := big.NewInt(0)
	gap := big.NewInt(0)
	gap.SetBit(gap, int(s.level(low)-level-1), 1)
	res.Add(res, gap.Mul(gap, s.satcount(low, memo)))

	gap = big.NewInt(0)
	gap.SetBit(gap, int(s.level(high)-level-1), 1)
	res.Add(res, gap.Mul(gap, s.satcount(high, memo)))

	memo[h] = res
	return res
}

// NodeInfo is one row of the report Allnodes produces: a node's own id,
// variable level, and the ids of its two children.
type NodeInfo struct {
	ID        Handle
	Level     int32
	Low, High Handle
}

// Allnodes calls f once for every node reachable from roots, including the
// two terminals, each exactly once. The order of traversal is unspecified.
func (s *Store) Allnodes(f func(NodeInfo) error, roots ...Handle) error {
	seen := make(map[Handle]bool)
	var visit func(h Handle) error
	visit = func(h Handle) error {
		if seen[h] {
			return nil
		}
		seen[h] = true
		if err := f(NodeInfo{ID: h, Level: s.level(h), Low: s.low(h), High: s.high(h)}); err != nil {
			return err
		}
		if s.isTerminal(h) {
			return nil
		}
		if err := visit(s.low(h)); err != nil {
			return err
		}
		return visit(s.high(h))
	}
	for _, r := range roots {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}
