// Package codec is the internal orchestrator that ties the wire,
// value, container, reduce, registry, and depth packages together into
// the five entry points of §4.5 (pack, encode, unpack, size, register).
// The root package is a thin facade over this package.
package codec

import (
	"github.com/lekma/mood.ippc/internal/depth"
	"github.com/lekma/mood.ippc/internal/options"
	"github.com/lekma/mood.ippc/registry"
)

type settings struct {
	maxDepth    int
	cycleDetect bool
	registry    *registry.Registry
}

// Option configures a Pack/Encode/Unpack call.
type Option = options.Option[*settings]

// WithMaxDepth bounds container recursion depth (§4.3). 0 selects
// depth.DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return options.NoError[*settings](func(s *settings) { s.maxDepth = n })
}

// WithCycleDetection enables the optional cycle guard invited by the
// §9 MAY. Off by default.
func WithCycleDetection(enabled bool) Option {
	return options.NoError[*settings](func(s *settings) { s.cycleDetect = enabled })
}

// WithRegistry overrides the process-wide default registry, mainly for
// tests that want an isolated registry rather than mutating the shared
// one.
func WithRegistry(r *registry.Registry) Option {
	return options.NoError[*settings](func(s *settings) { s.registry = r })
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{registry: registry.Default}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *settings) newGuard() *depth.Guard {
	return depth.New(s.maxDepth, s.cycleDetect)
}
