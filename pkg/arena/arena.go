// Package arena provides the allocation strategy used by the tree engine to
// create and release inner nodes and leaves.
//
// The tree never calls new/make directly for its nodes; every node and leaf
// is constructed through an Allocator so that the allocation strategy can be
// swapped without touching the tree's structural code. Two strategies are
// provided:
//
//   - [Arena]: always allocates fresh memory. Release is a no-op. This is
//     the right choice for a tree that is built once and read from for a
//     long time.
//   - [Recycled]: pools released memory by concrete type, so that a
//     workload with a lot of inserts and removes amortizes the allocator's
//     work instead of handing every freed node back to the GC.
//
// Both strategies allocate through ordinary, GC-visible Go allocation
// (new/sync.Pool) rather than a hand-rolled bump-pointer arena: the values
// stored in tree nodes contain pointers (child references, boxed keys and
// values), and a manually managed byte-slab would need to either keep those
// pointers alive by hand or forbid them outright. Routing everything
// through the runtime allocator keeps the GC aware of every live pointer at
// the cost of the bump-allocation speedup.
package arena

import (
	"reflect"
	"sync"
)

// Allocator is the interface that wraps the basic memory allocation and
// release operations used by the tree for every node and leaf.
type Allocator interface {
	// pool returns the per-type pool backing this allocator, or nil if this
	// allocator never recycles memory.
	pool() *sync.Map
}

// AllocatorExt is the allocator interface used on the removal path. It is a
// distinct name (rather than a plain alias) so that call sites document
// that removal may release memory, even though this implementation does
// not need any capability beyond what Allocator already provides.
type AllocatorExt interface {
	Allocator
}

// Arena is the zero-overhead allocator: every call to [New] allocates fresh
// memory, and [Free] does nothing. A zero Arena is ready to use.
type Arena struct{}

var _ Allocator = (*Arena)(nil)

func (*Arena) pool() *sync.Map { return nil }

// Recycled is an allocator that pools released memory by concrete type,
// so that repeated insert/remove cycles can reuse previously freed nodes
// instead of pressuring the garbage collector. A zero Recycled is ready to
// use.
type Recycled struct {
	pools sync.Map // reflect.Type -> *sync.Pool
}

var _ Allocator = (*Recycled)(nil)

func (r *Recycled) pool() *sync.Map { return &r.pools }

// New allocates a value of type T through the given allocator, initialized
// to v.
//
// With an [Arena], this is equivalent to a plain heap allocation. With a
// [Recycled] allocator, this first attempts to reuse a block previously
// returned via [Free] for the same concrete type T.
func New[T any](a Allocator, v T) *T {
	pools := a.pool()
	if pools == nil {
		p := new(T)
		*p = v

		return p
	}

	typ := reflect.TypeOf(v)

	pi, _ := pools.LoadOrStore(typ, &sync.Pool{
		New: func() any { return new(T) },
	})

	p := pi.(*sync.Pool).Get().(*T)
	*p = v

	return p
}

// Free releases a value previously allocated with [New] back to the
// allocator.
//
// With an [Arena], this does nothing; the memory is reclaimed by the GC
// once unreachable. With a [Recycled] allocator, the (zeroed) memory is
// returned to the pool for its concrete type so a later [New] call for the
// same type may reuse it.
func Free[T any](a Allocator, p *T) {
	pools := a.pool()
	if pools == nil || p == nil {
		return
	}

	var zero T
	*p = zero

	typ := reflect.TypeOf(zero)
	if pi, ok := pools.Load(typ); ok {
		pi.(*sync.Pool).Put(p)
	}
}
