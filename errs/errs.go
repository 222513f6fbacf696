// Package errs collects the sentinel errors raised by the ippc codec.
//
// Call sites wrap a sentinel with positional detail via fmt.Errorf's %w
// verb (mirroring how the teacher's blob package reports decode
// failures), so callers can match the failure kind with errors.Is while
// still getting a diagnostic naming the offending byte offset, tag, or
// identity.
package errs

import "errors"

var (
	// ErrEOF is returned when a decoder needs more bytes than the input
	// buffer has remaining.
	ErrEOF = errors.New("ippc: unexpected end of input")

	// ErrInvalidTag is returned when a tag byte is 0x00 or an undefined
	// high/low nibble combination.
	ErrInvalidTag = errors.New("ippc: invalid tag byte")

	// ErrBadLength is returned when a length prefix decodes to a
	// negative value.
	ErrBadLength = errors.New("ippc: negative length prefix")

	// ErrBadEncoding is returned when a STR payload fails UTF-8
	// validation.
	ErrBadEncoding = errors.New("ippc: invalid UTF-8 in string payload")

	// ErrRecursion is returned when container nesting exceeds the
	// configured depth limit, on either the pack or the unpack side.
	ErrRecursion = errors.New("ippc: recursion depth exceeded")

	// ErrOverflow is returned when packing an integer value that does
	// not fit in a signed or unsigned 64-bit word.
	ErrOverflow = errors.New("ippc: integer overflows 64 bits")

	// ErrNotRegistered is returned when a CLASS or SINGLETON identity
	// decoded from the stream has no matching entry in the registry.
	ErrNotRegistered = errors.New("ippc: identity not registered")

	// ErrBadReduce is returned when a user reducer returns a value of
	// the wrong shape (not a string for a singleton, not a tuple for an
	// instance reduction, and so on).
	ErrBadReduce = errors.New("ippc: malformed reduction")

	// ErrTypeUnpackable is returned when a value has no reducer and is
	// not one of the builtin kinds.
	ErrTypeUnpackable = errors.New("ippc: value has no reduction and is not a builtin kind")

	// ErrBadState is returned when a reconstruction step (state,
	// extend, or update) fails on an otherwise-constructed instance.
	ErrBadState = errors.New("ippc: instance reconstruction failed")

	// ErrAlreadyRegistered is returned by Registry.Register when an
	// identity is already bound to a different handle. Re-registering
	// the same identity with the same handle is idempotent and returns
	// no error; see the open question in the design notes.
	ErrAlreadyRegistered = errors.New("ippc: identity already registered to a different handle")
)
