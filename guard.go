//go:build debug

package art

import (
	"sync/atomic"

	"github.com/timandy/routine"

	"github.com/go-adaptive/art/internal/debug"
)

// guard asserts that a Tree is never entered by two goroutines at once,
// including reentrantly from within a callback. It costs an atomic swap per
// call in debug builds and nothing at all in release builds (see
// guard_release.go).
func (t *Tree[K, V]) guard() func() {
	writer := routine.Goid()

	prev := atomic.SwapInt64(&t.writer, writer)
	debug.Assert(prev == 0 || prev == writer,
		"concurrent access to art.Tree from goroutine %d while goroutine %d is still inside it", writer, prev)

	return func() { atomic.StoreInt64(&t.writer, prev) }
}
