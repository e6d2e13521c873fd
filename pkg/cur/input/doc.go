// Package input adapts a nullary producer callable into a single-pass,
// read-once cursor and an iterable range. The cursor pulls one value
// per read, converts the producer's cur.ErrEndOfInput into a final end
// state, and shares its pull state across all copies of itself.
//
// Key constructs:
// - From/End: bind a cursor to a producer / the unbound end sentinel
// - Next: return the next value, or ErrPastEnd once exhausted
// - HasNext: probe for a next value, buffering the pulled value
// - Equal: end-of-sequence test with the HasNext side effect
// - NewRange: begin/end pairing with ForEach and Collect helpers
//
// A cursor lineage is meant for single-threaded use; handing a cursor
// to another goroutine between sequential phases is fine, concurrent
// calls on copies of one lineage are not.
package input
