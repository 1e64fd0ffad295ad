package node

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/pkg/arena"
)

// Node16 doubles Node4's capacity with the same parallel-array layout.
// The teacher's variant scans this with a SIMD byte-equality mask; the
// scalar fallback here (see simdFindKeyIndex in simd.go) is used uniformly instead of
// branching on build constraints, since correctness, not throughput, is
// this core's goal.
type Node16[T any] struct {
	base     Base
	keys     [16]byte
	children [16]Ref[T]
}

var _ Inner[any] = (*Node16[any])(nil)

func NewNode16[T any](a arena.Allocator) *Node16[T] {
	return arena.New(a, Node16[T]{})
}

func (n *Node16[T]) Base() *Base { return &n.base }
func (n *Node16[T]) Full() bool  { return n.base.NumChildren == 16 }
func (n *Node16[T]) Ref() Ref[T] { return innerRef[T](TypeNode16, n) }

func (n *Node16[T]) FindChild(b byte) *Ref[T] {
	if i := simdFindKeyIndex(n.keys[:n.base.NumChildren], b); i >= 0 {
		return &n.children[i]
	}

	return nil
}

func (n *Node16[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "Node16.AddChild: node is full")

	i := n.base.NumChildren
	n.keys[i] = b
	n.children[i] = child
	n.base.NumChildren++
}

func (n *Node16[T]) Grow(a arena.Allocator) Inner[T] {
	nn := NewNode48[T](a)
	nn.base = n.base
	nn.base.NumChildren = 0

	for i := 0; i < n.base.NumChildren; i++ {
		nn.addGrown(n.keys[i], n.children[i])
	}

	return nn
}

func (n *Node16[T]) RemoveChild(a arena.Allocator, b byte) bool {
	i := simdFindKeyIndex(n.keys[:n.base.NumChildren], b)
	debug.Assert(i >= 0, "Node16.RemoveChild: child %d not present", b)

	last := n.base.NumChildren - 1
	n.keys[i] = n.keys[last]
	n.children[i] = n.children[last]
	n.children[last] = Ref[T]{}
	n.base.NumChildren--

	return n.base.NumChildren <= 2
}

// Shrink demotes to a Node4 once population drops to 2 or fewer.
func (n *Node16[T]) Shrink(a arena.AllocatorExt) Ref[T] {
	if n.base.NumChildren > 2 {
		return n.Ref()
	}

	nn := NewNode4[T](a)
	nn.base = n.base
	nn.base.NumChildren = 0

	for i := 0; i < n.base.NumChildren; i++ {
		nn.AddChild(n.keys[i], n.children[i])
	}

	n.Release(a)

	return nn.Ref()
}

func (n *Node16[T]) Release(a arena.Allocator) { arena.Free(a, n) }
