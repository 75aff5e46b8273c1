// Package bdd implements a canonical Reduced Ordered Binary Decision Diagram
// (ROBDD): a hash-consed, memoized representation of Boolean functions over a
// fixed, frozen variable ordering.
//
// Each Store has a fixed number of variables, set when it is created with
// New, and each variable is represented by an (integer) level in the interval
// [0..Varnum). Smaller levels sit closer to the root. Most operations return
// a Handle, a compact reference to a node in the store; handle equality is
// structural equality (canonicity), by construction of the unique table.
//
// Unlike the BuDDy-derived implementation this package is adapted from, there
// is a single backend: a plain Go map as the unicity table (generalizing what
// the original called its "Hudd" build tag), instead of a choice between a
// runtime hashmap and a hand-rolled bucketed array. The store grows
// monotonically for the lifetime of a solve; there is no reference counting,
// finalizers, or garbage collection, since a solve's store is short-lived by
// construction.
package bdd
