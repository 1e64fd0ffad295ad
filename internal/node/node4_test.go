package node_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-adaptive/art/pkg/arena"

	. "github.com/go-adaptive/art/internal/node"
)

func TestNode4(t *testing.T) {
	Convey("Given a Node4", t, func() {
		a := new(arena.Arena)
		n := NewNode4[int](a)

		Convey("When empty", func() {
			So(n.Full(), ShouldBeFalse)
			So(n.FindChild('a'), ShouldBeNil)
		})

		Convey("When adding children up to capacity", func() {
			leaf := func(v int) Ref[int] { return NewLeaf(a, []byte{byte(v)}, v).Ref() }

			n.AddChild('a', leaf(1))
			n.AddChild('b', leaf(2))
			n.AddChild('c', leaf(3))
			n.AddChild('d', leaf(4))

			Convey("Then it reports full", func() {
				So(n.Full(), ShouldBeTrue)
			})

			Convey("Then every child is reachable", func() {
				for _, b := range []byte{'a', 'b', 'c', 'd'} {
					ref := n.FindChild(b)
					So(ref, ShouldNotBeNil)
					So(ref.AsLeaf().Value(), ShouldEqual, int(b-'a'+1))
				}
			})

			Convey("Then Grow migrates every child into a Node16", func() {
				grown := n.Grow(a)
				So(grown.Base().NumChildren, ShouldEqual, 4)

				for _, b := range []byte{'a', 'b', 'c', 'd'} {
					ref := grown.FindChild(b)
					So(ref, ShouldNotBeNil)
				}
			})

			Convey("Then RemoveChild down to zero reports should-shrink", func() {
				So(n.RemoveChild(a, 'a'), ShouldBeFalse)
				So(n.RemoveChild(a, 'b'), ShouldBeFalse)
				So(n.RemoveChild(a, 'c'), ShouldBeFalse)
				So(n.RemoveChild(a, 'd'), ShouldBeTrue)

				Convey("And Shrink releases down to Empty", func() {
					ref := n.Shrink(a)
					So(ref.Empty(), ShouldBeTrue)
				})
			})

			Convey("Then RemoveChild above zero keeps the node as-is", func() {
				n.RemoveChild(a, 'a')

				ref := n.Shrink(a)
				So(ref.Empty(), ShouldBeFalse)
				So(ref.AsInner(), ShouldEqual, n)
			})
		})
	})
}
