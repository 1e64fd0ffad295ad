package tree

import "github.com/go-adaptive/art/internal/node"

// Search walks ref for key, returning the stored value and true if key is
// present.
func Search[V any](ref node.Ref[V], key []byte) (V, bool) {
	depth := 0

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.Matches(key) {
				return l.Value(), true
			}

			break
		}

		n := ref.AsInner()
		base := n.Base()

		if base.PartialLen > 0 {
			cached := base.PartialLen
			if cached > node.MaxPrefixLen {
				cached = node.MaxPrefixLen
			}

			if base.PrefixMatch(key, depth) != cached {
				break
			}

			depth += base.PartialLen
		}

		if depth >= len(key) {
			break
		}

		child := n.FindChild(key[depth])
		if child == nil {
			break
		}

		ref = *child
		depth++
	}

	var zero V

	return zero, false
}
