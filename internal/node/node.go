// Package node implements the node representation for the Adaptive Radix
// Tree: the tagged node reference, the four leaf shapes, and the four
// fan-out-specialised inner node variants (Node4, Node16, Node48, Node256).
//
// Every inner node variant implements the same capability set (AddChild,
// FindChild, Full, Grow, clean-then-Shrink), so the tree engine in the
// sibling tree package can drive them uniformly while dispatching on the
// concrete variant only where the algorithm genuinely differs (growth and
// shrink targets).
package node

import (
	"github.com/go-adaptive/art/internal/debug"
	"github.com/go-adaptive/art/pkg/arena"
)

// Type identifies the concrete shape behind a Ref.
type Type uint8

const (
	TypeEmpty Type = iota
	TypeNode4
	TypeNode16
	TypeNode48
	TypeNode256
	typeLeafBase // leaf shapes start here, see leaf.go
)

// MaxPrefixLen bounds how many bytes of a node's compressed path are
// mirrored in-node as a fast-mismatch hint. It is a space/time tradeoff,
// not a correctness parameter: a node whose real compressed prefix is
// longer than this only keeps the first MaxPrefixLen bytes as a hint, and
// relies on the leaf equality check at the end of a descent to resolve any
// ambiguity past that point (see Base.PrefixMatch).
const MaxPrefixLen = 8

// Base holds the bookkeeping shared by every inner node: its population and
// its path-compression prefix.
type Base struct {
	// Partial caches the first min(PartialLen, MaxPrefixLen) bytes of the
	// compressed path this node sits below.
	Partial [MaxPrefixLen]byte

	// PartialLen is the true length of the compressed path; it may exceed
	// MaxPrefixLen, in which case Partial only holds a prefix of it.
	PartialLen int

	// NumChildren is the current population of this node.
	NumChildren int
}

// prefix returns the live portion of the cached hint.
func (b *Base) prefix() []byte {
	n := b.PartialLen
	if n > MaxPrefixLen {
		n = MaxPrefixLen
	}

	return b.Partial[:n]
}

// PrefixMatch returns the length of the longest common prefix between
// key[depth:] and the cached partial hint, capped at PartialLen.
//
// When PartialLen exceeds MaxPrefixLen, only the cached bytes are checked;
// this can accept a descent into a subtree whose full compressed prefix
// does not actually match the key past byte MaxPrefixLen. That is safe: the
// descent always terminates at a leaf, and the leaf's full-key equality
// check rejects any key that does not truly belong in this subtree. See
// DESIGN.md for the rationale.
func (b *Base) PrefixMatch(key []byte, depth int) int {
	p := b.prefix()
	n := len(p)
	if rest := len(key) - depth; rest < n {
		n = rest
	}

	i := 0
	for ; i < n; i++ {
		if p[i] != key[depth+i] {
			break
		}
	}

	return i
}

// SetPrefix overwrites the cached hint and its length from a full byte
// slice (which may be longer than MaxPrefixLen).
func (b *Base) SetPrefix(p []byte) {
	b.PartialLen = len(p)
	n := copy(b.Partial[:], p)
	for i := n; i < MaxPrefixLen; i++ {
		b.Partial[i] = 0
	}
}

// CachedPrefix exposes the live portion of the cached hint to callers
// outside this package (the tree package splits nodes on it).
func (b *Base) CachedPrefix() []byte { return b.prefix() }

// ShiftPrefix discards the first skip bytes of the cached hint and of
// PartialLen, as when a node's compressed path is partially consumed by a
// split partway through it. Bytes beyond what was cached (PartialLen
// exceeded MaxPrefixLen) are simply forgotten, same as they always were.
func (b *Base) ShiftPrefix(skip int) {
	debug.Assert(skip <= b.PartialLen, "ShiftPrefix: skip %d exceeds PartialLen %d", skip, b.PartialLen)

	b.PartialLen -= skip

	var tmp [MaxPrefixLen]byte
	copy(tmp[:], b.Partial[skip:])
	b.Partial = tmp
}

// Inner is the capability set shared by the four fan-out variants.
type Inner[T any] interface {
	// Base gives access to the common prefix/population bookkeeping.
	Base() *Base

	// Full reports whether the node is at capacity for its variant.
	Full() bool

	// FindChild returns the child slot for b, or nil if absent.
	FindChild(b byte) *Ref[T]

	// AddChild inserts a new (b, child) edge. Precondition: b is not
	// already present and the node is not Full().
	AddChild(b byte, child Ref[T])

	// Grow migrates every edge (and the prefix) into the next larger
	// variant and returns it. Unreachable for Node256.
	Grow(a arena.Allocator) Inner[T]

	// RemoveChild clears the edge at b. Precondition: b is present.
	// Returns whether the node's population has dropped low enough that
	// the caller should attempt Shrink.
	RemoveChild(a arena.Allocator, b byte) bool

	// Shrink migrates every remaining edge into the next smaller variant
	// and returns it (or TypeEmpty's zero Ref if this was an N4 with no
	// children left). Returns the same node, as a Ref, when shrinking is
	// not warranted.
	Shrink(a arena.AllocatorExt) Ref[T]

	// Release frees this node (but not its children) back to a.
	Release(a arena.Allocator)

	// Ref returns a tagged reference to this node.
	Ref() Ref[T]
}
