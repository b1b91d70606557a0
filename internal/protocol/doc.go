// Package protocol owns the serial line contract shared by every framer.
//
// Ownership boundary:
// - protocol identifiers and dispatch errors
// - line-level bit symbols and sequences
package protocol
