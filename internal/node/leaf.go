package node

import (
	"bytes"
	"unsafe"

	"github.com/go-adaptive/art/pkg/arena"
)

// smallCellSize is the inline budget: a key (or value) that fits in this
// many bytes is stored by value inside the leaf struct instead of behind a
// pointer, to avoid a heap allocation per tiny leaf. One machine word
// matches the size of the pointer it would otherwise cost to box the value.
const smallCellSize = int(unsafe.Sizeof(uintptr(0)))

const (
	typeLeafKeyInlineValInline Type = typeLeafBase + iota
	typeLeafKeyInlineValBoxed
	typeLeafKeyBoxedValInline
	typeLeafKeyBoxedValBoxed
)

// Leaf is the capability set common to all four leaf shapes. Leaves never
// have children; the Inner-only operations are not part of this interface.
type Leaf[T any] interface {
	// KeyBytes returns the leaf's full key.
	KeyBytes() []byte

	// Value returns the leaf's current value.
	Value() T

	// SetValue overwrites the leaf's value (used on insert-overwrite).
	SetValue(v T)

	// Matches reports whether this leaf's key equals key byte-for-byte.
	Matches(key []byte) bool

	// Release frees this leaf back to a.
	Release(a arena.Allocator)

	Ref() Ref[T]
}

// valueFitsInline reports whether T's zero value fits the inline budget.
// This is a compile-time-shaped check (the same "static size test" idiom
// used throughout the rest of this module): it is evaluated once per call
// but always yields the same answer for a given T.
func valueFitsInline[T any]() bool {
	var z T
	return int(unsafe.Sizeof(z)) <= smallCellSize
}

// NewLeaf allocates a new leaf for (key, value), choosing among the four
// leaf shapes by comparing len(key) and sizeof(T) against the inline
// budget. All four shapes behave identically; only their storage differs.
func NewLeaf[T any](a arena.Allocator, key []byte, value T) Leaf[T] {
	keyInline := len(key) <= smallCellSize
	valInline := valueFitsInline[T]()

	switch {
	case keyInline && valInline:
		var buf [smallCellSize]byte
		copy(buf[:], key)

		return arena.New(a, leafKeyInlineValInline[T]{
			keyLen: uint8(len(key)),
			keyBuf: buf,
			value:  value,
		})

	case keyInline && !valInline:
		var buf [smallCellSize]byte
		copy(buf[:], key)

		return arena.New(a, leafKeyInlineValBoxed[T]{
			keyLen: uint8(len(key)),
			keyBuf: buf,
			value:  arena.New(a, value),
		})

	case !keyInline && valInline:
		boxedKey := make([]byte, len(key))
		copy(boxedKey, key)

		return arena.New(a, leafKeyBoxedValInline[T]{
			key:   boxedKey,
			value: value,
		})

	default:
		boxedKey := make([]byte, len(key))
		copy(boxedKey, key)

		return arena.New(a, leafKeyBoxedValBoxed[T]{
			key:   boxedKey,
			value: arena.New(a, value),
		})
	}
}

// --- key inline, value inline ---

type leafKeyInlineValInline[T any] struct {
	keyLen uint8
	keyBuf [smallCellSize]byte
	value  T
}

func (l *leafKeyInlineValInline[T]) KeyBytes() []byte          { return l.keyBuf[:l.keyLen] }
func (l *leafKeyInlineValInline[T]) Value() T                  { return l.value }
func (l *leafKeyInlineValInline[T]) SetValue(v T)               { l.value = v }
func (l *leafKeyInlineValInline[T]) Matches(key []byte) bool   { return bytes.Equal(l.KeyBytes(), key) }
func (l *leafKeyInlineValInline[T]) Release(a arena.Allocator) { arena.Free(a, l) }
func (l *leafKeyInlineValInline[T]) Ref() Ref[T]               { return leafRef[T](typeLeafKeyInlineValInline, l) }

// --- key inline, value boxed ---

type leafKeyInlineValBoxed[T any] struct {
	keyLen uint8
	keyBuf [smallCellSize]byte
	value  *T
}

func (l *leafKeyInlineValBoxed[T]) KeyBytes() []byte        { return l.keyBuf[:l.keyLen] }
func (l *leafKeyInlineValBoxed[T]) Value() T                { return *l.value }
func (l *leafKeyInlineValBoxed[T]) SetValue(v T)             { *l.value = v }
func (l *leafKeyInlineValBoxed[T]) Matches(key []byte) bool { return bytes.Equal(l.KeyBytes(), key) }
func (l *leafKeyInlineValBoxed[T]) Release(a arena.Allocator) {
	arena.Free(a, l.value)
	arena.Free(a, l)
}
func (l *leafKeyInlineValBoxed[T]) Ref() Ref[T] { return leafRef[T](typeLeafKeyInlineValBoxed, l) }

// --- key boxed, value inline ---

type leafKeyBoxedValInline[T any] struct {
	key   []byte
	value T
}

func (l *leafKeyBoxedValInline[T]) KeyBytes() []byte        { return l.key }
func (l *leafKeyBoxedValInline[T]) Value() T                { return l.value }
func (l *leafKeyBoxedValInline[T]) SetValue(v T)             { l.value = v }
func (l *leafKeyBoxedValInline[T]) Matches(key []byte) bool { return bytes.Equal(l.key, key) }
func (l *leafKeyBoxedValInline[T]) Release(a arena.Allocator) { arena.Free(a, l) }
func (l *leafKeyBoxedValInline[T]) Ref() Ref[T]              { return leafRef[T](typeLeafKeyBoxedValInline, l) }

// --- key boxed, value boxed ---

type leafKeyBoxedValBoxed[T any] struct {
	key   []byte
	value *T
}

func (l *leafKeyBoxedValBoxed[T]) KeyBytes() []byte        { return l.key }
func (l *leafKeyBoxedValBoxed[T]) Value() T                { return *l.value }
func (l *leafKeyBoxedValBoxed[T]) SetValue(v T)             { *l.value = v }
func (l *leafKeyBoxedValBoxed[T]) Matches(key []byte) bool { return bytes.Equal(l.key, key) }
func (l *leafKeyBoxedValBoxed[T]) Release(a arena.Allocator) {
	arena.Free(a, l.value)
	arena.Free(a, l)
}
func (l *leafKeyBoxedValBoxed[T]) Ref() Ref[T] { return leafRef[T](typeLeafKeyBoxedValBoxed, l) }
