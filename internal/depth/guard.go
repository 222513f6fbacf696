// Package depth implements the bounded-recursion guard that wraps every
// container-descending pack/unpack operation (§4.3), plus the optional
// cycle-detection guard invited by §9 as a MAY.
//
// The spec describes the recursion counter as per-thread, saturating at
// the host's safe stack depth (§5, §9). This Go port's pack/unpack are
// synchronous, single-call, single-goroutine operations (no callback
// re-enters the codec on another goroutine), so a Guard is scoped to one
// top-level call instead of a goroutine-local: callers construct one
// Guard per Pack/Unpack invocation and thread it through the recursive
// descent, which is equivalent in behavior and simpler than emulating
// thread-locals.
package depth

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/lekma/mood.ippc/errs"
)

// DefaultMaxDepth is used when a caller does not configure an explicit
// bound. It is deliberately conservative relative to the Go runtime's
// default goroutine stack (which grows on demand), favoring a clear
// Recursion error over a stack overflow.
const DefaultMaxDepth = 1000

// Guard tracks recursion depth for one top-level pack or unpack call,
// and optionally detects cycles among the backing pointers of slices and
// maps visited during that call.
type Guard struct {
	maxDepth int
	depth    int

	cycleDetect bool
	seen        map[uint64]struct{}
}

// New creates a Guard with the given maximum depth (0 selects
// DefaultMaxDepth) and cycle-detection setting.
func New(maxDepth int, cycleDetect bool) *Guard {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	g := &Guard{maxDepth: maxDepth, cycleDetect: cycleDetect}
	if cycleDetect {
		g.seen = make(map[uint64]struct{})
	}

	return g
}

// Enter increments the recursion counter on descent into a container. It
// must be paired with a deferred call to Exit. Returns an error wrapping
// errs.ErrRecursion once maxDepth is exceeded.
func (g *Guard) Enter() error {
	g.depth++
	if g.depth > g.maxDepth {
		return fmt.Errorf("%w: exceeded max depth %d", errs.ErrRecursion, g.maxDepth)
	}

	return nil
}

// Exit decrements the recursion counter on exit from a container,
// mirroring a prior successful Enter.
func (g *Guard) Exit() {
	g.depth--
}

// Depth returns the current recursion depth.
func (g *Guard) Depth() int {
	return g.depth
}

// EnterPointer is like Enter, but additionally fingerprints the backing
// pointer of a slice or map container (obtained via reflect.Value on the
// host value being packed) and fails with errs.ErrRecursion if the same
// pointer has already been seen earlier in this call. It is a no-op
// beyond Enter when cycle detection is disabled (the zero-value default,
// per §9: the wire format carries no back-references and most callers
// never need this).
func (g *Guard) EnterPointer(v reflect.Value) error {
	if err := g.Enter(); err != nil {
		return err
	}

	if !g.cycleDetect {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Ptr:
		if v.IsNil() {
			return nil
		}

		key := xxhash.Sum64String(fmt.Sprintf("%d:%x", v.Kind(), v.Pointer()))
		if _, ok := g.seen[key]; ok {
			g.depth--

			return fmt.Errorf("%w: cyclic reference detected", errs.ErrRecursion)
		}

		g.seen[key] = struct{}{}
	}

	return nil
}
