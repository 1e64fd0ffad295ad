package node

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/pkg/arena"
)

// Node256 is the largest fan-out variant: a direct byte-indexed array of
// children. There is no index table to maintain and no growth target; it
// is the ceiling of the adaptive ladder.
type Node256[T any] struct {
	base     Base
	children [256]Ref[T]
}

var _ Inner[any] = (*Node256[any])(nil)

func NewNode256[T any](a arena.Allocator) *Node256[T] {
	return arena.New(a, Node256[T]{})
}

func (n *Node256[T]) Base() *Base { return &n.base }
func (n *Node256[T]) Full() bool  { return n.base.NumChildren == 256 }
func (n *Node256[T]) Ref() Ref[T] { return innerRef[T](TypeNode256, n) }

func (n *Node256[T]) FindChild(b byte) *Ref[T] {
	if n.children[b].typ == TypeEmpty {
		return nil
	}

	return &n.children[b]
}

func (n *Node256[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(n.children[b].typ == TypeEmpty, "Node256.AddChild: child %d already present", b)

	n.children[b] = child
	n.base.NumChildren++
}

// Grow is unreachable: Node256 is the largest variant.
func (n *Node256[T]) Grow(a arena.Allocator) Inner[T] {
	panic("art: Node256.Grow: no larger variant exists")
}

func (n *Node256[T]) RemoveChild(a arena.Allocator, b byte) bool {
	debug.Assert(n.children[b].typ != TypeEmpty, "Node256.RemoveChild: child %d not present", b)

	n.children[b] = Ref[T]{}
	n.base.NumChildren--

	return n.base.NumChildren <= 40
}

// Shrink demotes to a Node48 once population drops to 40 or fewer.
func (n *Node256[T]) Shrink(a arena.AllocatorExt) Ref[T] {
	if n.base.NumChildren > 40 {
		return n.Ref()
	}

	nn := NewNode48[T](a)
	nn.base = n.base
	nn.base.NumChildren = 0

	for b := 0; b < 256; b++ {
		if n.children[b].typ != TypeEmpty {
			nn.addGrown(byte(b), n.children[b])
		}
	}

	n.Release(a)

	return nn.Ref()
}

func (n *Node256[T]) Release(a arena.Allocator) { arena.Free(a, n) }
