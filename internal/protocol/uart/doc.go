// Package uart owns UART format rules and frame serialization.
//
// Ownership boundary:
// - format string to packed rule codec
// - per-byte frame layout: start, data, parity, stop; idle pause bits between frames
//
// Packed rule layout:
//
//	7   6   5   4   3   2   1   0
//	E   S   P   P   D   D   D   D
//
//	E: bit order (0 LSB first, 1 MSB first)
//	S: stop bits (0 one, 1 two)
//	P: parity (0 none, 1 odd, 2 even)
//	D: data bits (5-9)
package uart
