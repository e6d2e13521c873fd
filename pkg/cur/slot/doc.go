// Package slot provides a single-slot value container that normalizes
// owned and borrowed storage behind one read/extract interface. The
// input cursor buffers pulled values in an Owned slot; ranges and output
// cursors share their backing callable through a Borrowed slot.
//
// Key constructs:
// - View: the common Get/Extract/IsSet read side
// - Owned: holds its own value; Extract empties the slot
// - Borrowed: holds an address; Extract re-reads and is idempotent
//
// Which kind backs a given use is fixed at construction, never switched
// at runtime.
package slot
