// Package frame implements an optional compressed outer envelope around
// a pack payload.
//
// pack, encode, unpack, size and register (see the root package) define
// the wire codec itself and never touch compression. frame sits strictly
// outside that grammar: it wraps whatever bytes encode produced in a
// second, compressed envelope that a transport can choose to use instead
// of the bare frame when it wants smaller messages on the wire.
//
//	compressed-frame := 1 byte compression-id | W L(W) | compressed-payload
//
// The compression-id selects the algorithm used for the payload that
// follows; NoOp (the default) stores the encode output unchanged. This
// package carries no opinion about when compression is worth it — that
// judgment belongs to the transport, which knows the message sizes it
// actually sees.
package frame
