// Package registry implements the process-wide mapping from encoded
// identity bytes to live in-process handles (§3, §4.4, §9). A Handle is
// either a class (looked up on CLASS tags) or a singleton value (looked
// up on SINGLETON tags); the registry does not distinguish the two at
// storage time; it is the caller's job to encode the right identity
// bytes for whichever one it is registering.
package registry

import (
	"fmt"
	"sync"

	"github.com/lekma/mood.ippc/errs"
)

// Handle is whatever the host application registers: a class
// constructor for a ClassRef identity, or a concrete value for a
// Singleton identity. The registry stores it opaquely; reduce is
// responsible for interpreting it.
type Handle any

// Registry is a reader/writer-lock-guarded map from identity bytes to
// Handle, satisfying the write-once-per-key, read-after-write-on-same-
// goroutine guarantees of §5 and §9.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Handle
}

// New creates an empty Registry. Most callers should use the
// process-wide Default instead.
func New() *Registry {
	return &Registry{m: make(map[string]Handle)}
}

// Register binds identity to handle. Re-registering the same identity
// with an equal handle (per ==) is idempotent. Re-registering with a
// different handle is rejected with errs.ErrAlreadyRegistered, per the
// recommended resolution of the §9 open question: reject rather than
// silently overwrite.
func (r *Registry) Register(identity string, handle Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.m[identity]
	if !ok {
		r.m[identity] = handle
		return nil
	}

	if existing == handle {
		return nil
	}

	return fmt.Errorf("%w: identity %q", errs.ErrAlreadyRegistered, identity)
}

// MustRegister is like Register but panics on error. Intended for
// package-level init() registration of well-known builtins, where a
// conflict indicates a programming error rather than a runtime
// condition the caller should handle.
func (r *Registry) MustRegister(identity string, handle Handle) {
	if err := r.Register(identity, handle); err != nil {
		panic(err)
	}
}

// Lookup returns the handle bound to identity, if any.
func (r *Registry) Lookup(identity string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.m[identity]

	return h, ok
}

// Len reports the number of registered identities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.m)
}

// BuiltinNotImplemented and BuiltinEllipsis are the canonical singleton
// names that §3 requires the registry to be pre-populated with. This
// package stores identities as opaque strings and has no notion of how
// they're encoded; internal/codec computes the actual wire identity
// bytes for these two names and registers them into Default at its own
// package init, since that encoding is the wire package's concern, not
// this one's.
const (
	BuiltinNotImplemented = "NotImplemented"
	BuiltinEllipsis       = "Ellipsis"
)

// Default is the process-wide registry consulted by Pack/Unpack when no
// explicit Registry is supplied via an option.
var Default = New()
