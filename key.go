package art

import "encoding/binary"

// Key is the contract by which a key yields an immutable byte view of
// itself. The tree never looks at anything but this view: ordering is not
// required, and equality of two keys is exactly equality of their byte
// views as sequences.
//
// Implementations must return a view whose content and length are stable
// for the lifetime of the key — the tree may hold onto the bytes (or a copy
// of a short prefix of them) well past the call that produced them.
type Key interface {
	Bytes() []byte
}

// Bytes adapts a raw []byte as a Key. The tree treats the slice as
// immutable once passed to Insert; callers must not mutate it afterwards.
type Bytes []byte

func (b Bytes) Bytes() []byte { return b }

// String adapts a string as a Key.
type String string

func (s String) Bytes() []byte { return []byte(s) }

// Uint64 adapts a uint64 as a Key by exposing its big-endian byte
// representation. Big-endian is used so that, should a future surface add
// ordered iteration, byte order agrees with integer order; it has no
// bearing on the point operations this core provides.
type Uint64 uint64

func (u Uint64) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(u))

	return b[:]
}

// Uint32 adapts a uint32 as a Key by exposing its big-endian byte
// representation.
type Uint32 uint32

func (u Uint32) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(u))

	return b[:]
}
