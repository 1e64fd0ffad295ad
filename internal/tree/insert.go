package tree

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/internal/node"
	"github.com/go-adaptive/art/pkg/arena"
)

// Insert recursively inserts (key, value) below ref, growing and splitting
// nodes as needed. It returns the value previously stored under key and
// true if key already existed (in which case its value has been
// overwritten); otherwise it returns the zero value and false.
func Insert[V any](a arena.Allocator, ref *node.Ref[V], key []byte, value V) (V, bool) {
	return insert(a, ref, key, value, 0)
}

func insert[V any](a arena.Allocator, ref *node.Ref[V], key []byte, value V, depth int) (V, bool) {
	if ref.Empty() {
		*ref = node.NewLeaf(a, key, value).Ref()

		var zero V

		return zero, false
	}

	if l := ref.AsLeaf(); l != nil {
		return insertIntoLeaf(a, ref, l, key, value, depth)
	}

	return insertIntoInner(a, ref, key, value, depth)
}

func insertIntoLeaf[V any](a arena.Allocator, ref *node.Ref[V], curr node.Leaf[V], key []byte, value V, depth int) (V, bool) {
	if curr.Matches(key) {
		old := curr.Value()
		curr.SetValue(value)

		return old, true
	}

	currKey := curr.KeyBytes()
	split := LongestCommonPrefix(key, currKey, depth)

	newNode := node.NewNode4[V](a)
	if split > depth {
		newNode.Base().SetPrefix(key[depth:split])
	}

	debug.Assert(split < len(currKey) && split < len(key),
		"insertIntoLeaf: two distinct keys share a path with no diverging byte")

	newNode.AddChild(currKey[split], curr.Ref())
	newNode.AddChild(key[split], node.NewLeaf(a, key, value).Ref())

	*ref = newNode.Ref()

	var zero V

	return zero, false
}

func insertIntoInner[V any](a arena.Allocator, ref *node.Ref[V], key []byte, value V, depth int) (V, bool) {
	curr := ref.AsInner()
	base := curr.Base()

	if base.PartialLen > 0 {
		cached := base.PartialLen
		if cached > node.MaxPrefixLen {
			cached = node.MaxPrefixLen
		}

		matched := base.PrefixMatch(key, depth)

		if matched < cached {
			divergingByte := base.CachedPrefix()[matched]

			newNode := node.NewNode4[V](a)
			newNode.Base().SetPrefix(base.CachedPrefix()[:matched])

			base.ShiftPrefix(matched + 1)

			newNode.AddChild(divergingByte, curr.Ref())
			newNode.AddChild(key[depth+matched], node.NewLeaf(a, key, value).Ref())

			*ref = newNode.Ref()

			var zero V

			return zero, false
		}

		depth += base.PartialLen
	}

	debug.Assert(depth < len(key), "insertIntoInner: key exhausted before reaching a leaf")

	b := key[depth]

	if child := curr.FindChild(b); child != nil {
		return insert(a, child, key, value, depth+1)
	}

	addChild(a, ref, curr, b, node.NewLeaf(a, key, value).Ref())

	var zero V

	return zero, false
}

func addChild[V any](a arena.Allocator, ref *node.Ref[V], curr node.Inner[V], b byte, child node.Ref[V]) {
	if !curr.Full() {
		curr.AddChild(b, child)

		return
	}

	grown := curr.Grow(a)
	grown.AddChild(b, child)
	curr.Release(a)

	*ref = grown.Ref()
}
