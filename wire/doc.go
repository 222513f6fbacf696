// Package wire implements the low-level binary grammar of the ippc wire
// format: the tag alphabet, the length-prefix width rule, and the
// primitive (Int/UInt/Float/Complex/Null/Bool) codec.
//
// Every encoded value starts with one tag byte. For fixed-shape kinds
// (the primitives) the tag alone determines how many payload bytes
// follow. For variable-length kinds (strings, byte buffers, and every
// container) the low nibble of the tag is a width code W selecting how
// many bytes hold the element or byte count that follows the tag.
//
// This package knows nothing about the higher-level value model (see
// the value package) or about containers, identities, and the registry
// (see the container and reduce packages); it only reads and writes
// bytes according to the grammar in spec §4.1–4.2 and §6.1.
package wire
