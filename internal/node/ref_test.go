package node_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-adaptive/art/pkg/arena"

	. "github.com/go-adaptive/art/internal/node"
)

func TestRef(t *testing.T) {
	Convey("Given an empty Ref", t, func() {
		var ref Ref[int]

		So(ref.Empty(), ShouldBeTrue)
		So(ref.Type(), ShouldEqual, TypeEmpty)
		So(ref.IsLeaf(), ShouldBeFalse)
		So(ref.IsInner(), ShouldBeFalse)
		So(ref.AsLeaf(), ShouldBeNil)
		So(ref.AsInner(), ShouldBeNil)
	})

	Convey("Given a leaf Ref", t, func() {
		a := new(arena.Arena)
		l := NewLeaf(a, []byte("x"), 1)
		ref := l.Ref()

		So(ref.Empty(), ShouldBeFalse)
		So(ref.IsLeaf(), ShouldBeTrue)
		So(ref.IsInner(), ShouldBeFalse)
		So(ref.AsLeaf(), ShouldEqual, l)
		So(ref.AsInner(), ShouldBeNil)
	})

	Convey("Given an inner Ref", t, func() {
		a := new(arena.Arena)
		n := NewNode4[int](a)
		ref := n.Ref()

		So(ref.Empty(), ShouldBeFalse)
		So(ref.IsInner(), ShouldBeTrue)
		So(ref.IsLeaf(), ShouldBeFalse)
		So(ref.Type(), ShouldEqual, TypeNode4)
		So(ref.AsInner(), ShouldEqual, n)
		So(ref.AsLeaf(), ShouldBeNil)
	})
}
