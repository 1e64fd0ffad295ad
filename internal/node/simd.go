package node

// simdFindKeyIndex scans the active prefix of a Node16's key array for an
// exact byte match. The teacher this module is adapted from dispatches this
// scan to an architecture-specific SIMD routine (a 16-byte compare-and-mask)
// with a scalar fallback for other architectures; that routine's amd64
// assembly is not carried over here; see DESIGN.md. The scalar scan is the
// correct fallback on every platform, just not the fastest one on amd64.
func simdFindKeyIndex(keys []byte, key byte) int {
	for i, b := range keys {
		if b == key {
			return i
		}
	}

	return -1
}
