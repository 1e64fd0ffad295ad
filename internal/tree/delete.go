package tree

import (
	"github.com/go-adaptive/art/internal/node"
	"github.com/go-adaptive/art/pkg/arena"
)

// Delete recursively removes key from below ref, shrinking nodes as
// needed. It returns the removed value and true if key was present;
// otherwise the zero value and false.
func Delete[V any](a arena.AllocatorExt, ref *node.Ref[V], key []byte) (V, bool) {
	return remove(a, ref, key, 0)
}

func remove[V any](a arena.AllocatorExt, ref *node.Ref[V], key []byte, depth int) (V, bool) {
	if ref.Empty() {
		var zero V

		return zero, false
	}

	if l := ref.AsLeaf(); l != nil {
		if !l.Matches(key) {
			var zero V

			return zero, false
		}

		old := l.Value()
		l.Release(a)
		*ref = node.Ref[V]{}

		return old, true
	}

	curr := ref.AsInner()
	base := curr.Base()

	if base.PartialLen > 0 {
		cached := base.PartialLen
		if cached > node.MaxPrefixLen {
			cached = node.MaxPrefixLen
		}

		if base.PrefixMatch(key, depth) != cached {
			var zero V

			return zero, false
		}

		depth += base.PartialLen
	}

	if depth >= len(key) {
		var zero V

		return zero, false
	}

	b := key[depth]

	child := curr.FindChild(b)
	if child == nil {
		var zero V

		return zero, false
	}

	if l := child.AsLeaf(); l != nil {
		if !l.Matches(key) {
			var zero V

			return zero, false
		}

		old := l.Value()
		l.Release(a)

		if curr.RemoveChild(a, b) {
			*ref = curr.Shrink(a)
		}

		return old, true
	}

	old, ok := remove(a, child, key, depth+1)
	if ok && child.Empty() {
		if curr.RemoveChild(a, b) {
			*ref = curr.Shrink(a)
		}
	}

	return old, ok
}
