// Package tree implements the recursive search, insert and delete
// algorithms that drive an Adaptive Radix Tree. It operates purely in
// terms of node.Ref and byte slices; the root package wraps it with a
// typed Key/Value surface and owns the null-termination convention that
// lets one key be a byte-wise prefix of another without special-casing
// node fan-out on an out-of-band terminator.
package tree

// LongestCommonPrefix returns the index, starting no earlier than depth, of
// the first byte at which a and b differ (or the length of the shorter of
// the two, if one is a prefix of the other up to that point).
func LongestCommonPrefix(a, b []byte, depth int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := depth
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
