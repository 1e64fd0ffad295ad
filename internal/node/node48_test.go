package node_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-adaptive/art/pkg/arena"

	. "github.com/go-adaptive/art/internal/node"
)

func fillNode48(a arena.Allocator, n *Node48[int], from, count byte) {
	for b := from; b < from+count; b++ {
		n.AddChild(b, NewLeaf(a, []byte{b}, int(b)).Ref())
	}
}

func TestNode48(t *testing.T) {
	Convey("Given a Node48", t, func() {
		a := new(arena.Arena)
		n := NewNode48[int](a)

		fillNode48(a, n, 0, 48)

		Convey("Then it is full and every child is reachable by index", func() {
			So(n.Full(), ShouldBeTrue)

			for b := byte(0); b < 48; b++ {
				ref := n.FindChild(b)
				So(ref, ShouldNotBeNil)
				So(ref.AsLeaf().Value(), ShouldEqual, int(b))
			}
		})

		Convey("Then Grow migrates every child into a Node256", func() {
			grown := n.Grow(a)
			So(grown.Base().NumChildren, ShouldEqual, 48)

			for b := byte(0); b < 48; b++ {
				So(grown.FindChild(b), ShouldNotBeNil)
			}
		})

		Convey("When removing children down past the shrink threshold", func() {
			for b := byte(10); b < 48; b++ {
				shouldShrink := n.RemoveChild(a, b)
				if n.Base().NumChildren <= 10 {
					So(shouldShrink, ShouldBeTrue)
				}
			}

			Convey("Then Shrink demotes to a Node16 carrying the remaining children", func() {
				ref := n.Shrink(a)
				n16, ok := ref.AsInner().(*Node16[int])
				So(ok, ShouldBeTrue)
				So(n16.Base().NumChildren, ShouldEqual, 10)

				for b := byte(0); b < 10; b++ {
					So(n16.FindChild(b), ShouldNotBeNil)
				}
			})
		})
	})
}
