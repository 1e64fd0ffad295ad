package debug

import (
	"testing"

	"github.com/timandy/routine"
)

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting routes Log output through t.Log instead of stderr for the
// duration of a test.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)

	return func() {
		tls.Set(prev)
	}
}
