// Package output adapts a unary sink callable into a single-pass
// consumer cursor. Each value assigned through Put is forwarded to the
// sink; Get and Advance are identity no-ops kept for the generic
// cursor shape.
package output
