// Package generator owns the batch pipeline from job to artifacts.
//
// Ownership boundary:
// - job validation before any write
// - data ingestion, framing and timing
// - staged artifact commits and run metrics
package generator
