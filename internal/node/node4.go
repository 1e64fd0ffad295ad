package node

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/pkg/arena"
)

// Node4 is the smallest inner node, holding up to 4 children in two
// parallel arrays. It is the entry point for every new branch in the tree:
// cheapest to allocate and scan for the common case of a sparsely
// populated subtree.
type Node4[T any] struct {
	base     Base
	keys     [4]byte
	children [4]Ref[T]
}

var _ Inner[any] = (*Node4[any])(nil)

func NewNode4[T any](a arena.Allocator) *Node4[T] {
	return arena.New(a, Node4[T]{})
}

func (n *Node4[T]) Base() *Base  { return &n.base }
func (n *Node4[T]) Full() bool   { return n.base.NumChildren == 4 }
func (n *Node4[T]) Ref() Ref[T]  { return innerRef[T](TypeNode4, n) }

func (n *Node4[T]) FindChild(b byte) *Ref[T] {
	for i := 0; i < n.base.NumChildren; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}

	return nil
}

func (n *Node4[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "Node4.AddChild: node is full")

	i := n.base.NumChildren
	n.keys[i] = b
	n.children[i] = child
	n.base.NumChildren++
}

func (n *Node4[T]) Grow(a arena.Allocator) Inner[T] {
	nn := NewNode16[T](a)
	nn.base = n.base

	for i := 0; i < n.base.NumChildren; i++ {
		nn.keys[i] = n.keys[i]
		nn.children[i] = n.children[i]
	}

	return nn
}

func (n *Node4[T]) RemoveChild(a arena.Allocator, b byte) bool {
	i := n.indexOf(b)
	debug.Assert(i >= 0, "Node4.RemoveChild: child %d not present", b)

	last := n.base.NumChildren - 1
	n.keys[i] = n.keys[last]
	n.children[i] = n.children[last]
	n.children[last] = Ref[T]{}
	n.base.NumChildren--

	return n.base.NumChildren <= 0
}

func (n *Node4[T]) indexOf(b byte) int {
	for i := 0; i < n.base.NumChildren; i++ {
		if n.keys[i] == b {
			return i
		}
	}

	return -1
}

// Shrink converts this Node4 to Empty once it has no children left; a
// Node4 never shrinks to anything smaller than Empty.
func (n *Node4[T]) Shrink(a arena.AllocatorExt) Ref[T] {
	if n.base.NumChildren > 0 {
		return n.Ref()
	}

	n.Release(a)

	return Ref[T]{}
}

func (n *Node4[T]) Release(a arena.Allocator) { arena.Free(a, n) }
