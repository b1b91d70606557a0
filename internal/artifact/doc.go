// Package artifact owns the files a generation run produces.
//
// Ownership boundary:
// - mem file encoding, one bit per line
// - Verilog replay testbench rendering
// - staged writes that commit together or not at all
package artifact
