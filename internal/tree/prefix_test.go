package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/go-adaptive/art/internal/tree"
)

func TestLongestCommonPrefix(t *testing.T) {
	Convey("Given two byte slices", t, func() {
		Convey("That share a prefix", func() {
			i := LongestCommonPrefix([]byte("hello world"), []byte("hello there"), 0)
			So(i, ShouldEqual, len("hello "))
		})

		Convey("That are identical", func() {
			i := LongestCommonPrefix([]byte("same"), []byte("same"), 0)
			So(i, ShouldEqual, len("same"))
		})

		Convey("That diverge immediately", func() {
			i := LongestCommonPrefix([]byte("abc"), []byte("xyz"), 0)
			So(i, ShouldEqual, 0)
		})

		Convey("Starting from a nonzero depth", func() {
			i := LongestCommonPrefix([]byte("prefix-abc"), []byte("prefix-abz"), 7)
			So(i, ShouldEqual, 9)
		})

		Convey("Where one is a prefix of the other", func() {
			i := LongestCommonPrefix([]byte("foo"), []byte("foobar"), 0)
			So(i, ShouldEqual, 3)
		})
	})
}
