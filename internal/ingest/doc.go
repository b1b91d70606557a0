// Package ingest builds the byte buffer handed to framers.
//
// Ownership boundary:
// - inline base-10 and base-16 literal parsing
// - data file reading at a fixed limb width
// - little-endian limb extraction and the limb count cap
package ingest
