// Package engine bridges the cursor adapters to the usual suppliers of
// their callables: channels fed by a concurrent work engine, and slices
// for stateful in-memory sequences. Scheduling, worker lifecycle, and
// submission policy stay with the engine behind the channel; this
// package only shapes its ends into cur.Pull and cur.Sink.
//
// Key constructs:
// - PullChan/SinkChan: blocking channel bridges honoring cancellation
// - PullSlice: counter-backed producer for in-memory sequences
// - SinkCollect: recording sink
// - Copy/Drain: route a range or cursor into a sink-side consumer
package engine
