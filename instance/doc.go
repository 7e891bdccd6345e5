// Package instance reads and writes SMSP-SDSTWT problem files in the plain
// whitespace-separated text format (§6.1): job count, processing/due/penalty
// arrays, the initial setup row, and the N×N setup matrix.
//
// Parse never logs and never fails on an out-of-domain value it can repair:
// negative processing, due, penalty, or setup entries are clamped to zero
// and reported back to the caller as Warnings, mirroring the reference
// parser's recoverable-input policy. Structural errors (wrong field count,
// non-numeric token, dimension mismatch) are fatal.
package instance
