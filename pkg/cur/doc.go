// Package cur defines the callable contracts shared by the cursor
// adapters: Pull, a nullary producer that yields the next value of a
// sequence or signals exhaustion, and Sink, a unary consumer.
//
// Key pieces:
// - Pull/Sink: the two callable shapes the adapters are built from
// - ErrEndOfInput: the distinguished exhaustion signal of a Pull
// - ErrPastEnd: reported when reading a cursor already at end
// - IsEnd/IsPastEnd: errors.Is helpers for the two sentinels
//
// Subpackages build the adapters proper: slot (value transport), input
// (pull-backed cursor and range), output (sink-backed cursor), and
// engine (channel and slice bridges plus copy algorithms).
package cur
