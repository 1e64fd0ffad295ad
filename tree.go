// Package art implements an Adaptive Radix Tree: an in-memory, ordered-key
// associative container whose inner nodes grow and shrink among four
// fan-out-specialised representations (4, 16, 48 and 256 children) and
// whose leaves use path compression and lazy expansion to keep the tree's
// height close to the length of the distinguishing bytes between keys,
// rather than the length of the keys themselves.
package art

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/internal/node"
	"github.com/go-adaptive/art/internal/tree"
	"github.com/go-adaptive/art/pkg/arena"
)

// Tree is an Adaptive Radix Tree keyed by K, storing values of type V.
//
// The zero Tree is empty and ready to use. A Tree is not safe for
// concurrent use; debug builds assert this with a single-writer guard
// (see guard.go).
type Tree[K Key, V any] struct {
	root node.Ref[V]
	size int

	// writer is the goroutine id currently inside a Tree method, or 0. It
	// is only consulted by the debug-build guard in guard.go; release
	// builds (guard_release.go) ignore it.
	writer int64
}

// New returns an empty Tree.
func New[K Key, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys currently stored in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

// Insert stores value under key, allocating any new nodes through a. If
// key was already present, its value is overwritten and the previous value
// is returned alongside true; otherwise the zero value and false are
// returned.
func (t *Tree[K, V]) Insert(a arena.Allocator, key K, value V) (V, bool) {
	defer t.guard()()

	old, existed := tree.Insert(a, &t.root, terminated(key), value)
	if !existed {
		t.size++
	}

	return old, existed
}

// Get returns the value stored under key, and true if key is present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	defer t.guard()()

	return tree.Search(t.root, terminated(key))
}

// Remove deletes key from the tree, releasing its leaf (and any node left
// with no remaining children) through a. It returns the removed value and
// true if key was present.
func (t *Tree[K, V]) Remove(a arena.AllocatorExt, key K) (V, bool) {
	defer t.guard()()

	old, existed := tree.Delete(a, &t.root, terminated(key))
	if existed {
		t.size--
	}

	return old, existed
}

// terminated encodes a key's byte view so that no two distinct keys are
// ever byte-wise prefixes of one another in the space the tree actually
// indexes — including keys that are themselves byte-wise prefixes of one
// another (e.g. "foo" and "foobar") and keys that contain a raw 0x00 byte.
//
// A plain single 0x00 terminator only solves the first case: it stops
// working the moment a key can contain 0x00 itself, since terminated("a")
// = {'a', 0} would then be a byte-wise prefix of terminated("a\x00") =
// {'a', 0, 0}. Instead, every 0x00 byte in the raw key is escaped as the
// two-byte sequence {0, 0xFF}, and the encoding ends with the literal
// sequence {0, 0}. Reading left to right, a 0x00 is always immediately
// followed by either 0xFF (an escaped byte, decoding continues) or a second
// 0x00 (the terminator, decoding stops) — so the terminator can never occur
// as part of any other key's encoding before its own true end, and no
// encoded key can be a byte-wise prefix of another.
func terminated[K Key](key K) []byte {
	raw := key.Bytes()

	debug.Assert(len(raw) < 1<<24, "terminated: implausibly large key (%d bytes)", len(raw))

	b := make([]byte, 0, len(raw)+2)

	for _, c := range raw {
		b = append(b, c)
		if c == 0 {
			b = append(b, 0xFF)
		}
	}

	return append(b, 0, 0)
}
