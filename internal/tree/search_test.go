package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-adaptive/art/internal/node"
	"github.com/go-adaptive/art/pkg/arena"

	. "github.com/go-adaptive/art/internal/tree"
)

func TestSearch(t *testing.T) {
	Convey("Given an empty tree", t, func() {
		var root node.Ref[int]

		_, ok := Search(root, []byte("hello"))
		So(ok, ShouldBeFalse)
	})

	Convey("Given a tree with a single leaf", t, func() {
		a := new(arena.Arena)
		root := node.NewLeaf(a, []byte("hello"), 123).Ref()

		Convey("Searching the matching key finds it", func() {
			v, ok := Search(root, []byte("hello"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 123)
		})

		Convey("Searching a different key misses", func() {
			_, ok := Search(root, []byte("world"))
			So(ok, ShouldBeFalse)
		})

		Convey("Searching a strict prefix misses", func() {
			_, ok := Search(root, []byte("hel"))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a tree built through Insert with a shared path", t, func() {
		a := new(arena.Arena)
		var root node.Ref[int]

		Insert(a, &root, []byte("apple"), 1)
		Insert(a, &root, []byte("apply"), 2)
		Insert(a, &root, []byte("banana"), 3)

		Convey("Every inserted key is found with its own value", func() {
			v, ok := Search(root, []byte("apple"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1)

			v, ok = Search(root, []byte("apply"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 2)

			v, ok = Search(root, []byte("banana"))
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 3)
		})

		Convey("An unrelated key is not found", func() {
			_, ok := Search(root, []byte("grape"))
			So(ok, ShouldBeFalse)
		})
	})
}
