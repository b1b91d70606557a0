// Package framer owns protocol dispatch for serialization.
//
// Ownership boundary:
// - framer interface and spec
// - framer registry keyed by protocol id
// - reserved stubs for protocols without framing
package framer
