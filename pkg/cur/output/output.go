package output

import (
	"context"

	"github.com/google/uuid"
	"github.com/vd-84/seqcur/pkg/cur"
	"github.com/vd-84/seqcur/pkg/cur/slot"
)

// Cursor is a single-pass consumer backed by a cur.Sink. Copies share
// the same sink, so values assigned through any copy reach one
// destination. There is no end state: the caller decides how many
// values to produce.
type Cursor[T any] struct {
	id uuid.UUID
	fn slot.Borrowed[cur.Sink[T]]
}

// To binds a cursor to the given sink.
func To[T any](sink cur.Sink[T]) Cursor[T] {
	c := Cursor[T]{id: uuid.New()}
	c.fn.Bind(&sink)
	return c
}

// Id identifies the cursor; all copies report the same id.
func (c Cursor[T]) Id() uuid.UUID {
	return c.id
}

// Put assigns one value, forwarding it as the single argument to the
// backing sink. A sink error is returned unchanged.
func (c Cursor[T]) Put(ctx context.Context, v T) error {
	return c.fn.Get()(ctx, v)
}

// Emit assigns the given values in order, stopping on the first sink
// error.
func (c Cursor[T]) Emit(ctx context.Context, vs ...T) error {
	for _, v := range vs {
		if err := c.Put(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

// Get is a no-op identity satisfying the generic sink-cursor shape
// used by insertion-style algorithms.
func (c Cursor[T]) Get() Cursor[T] {
	return c
}

// Advance is a no-op identity; an output cursor has no position.
func (c Cursor[T]) Advance() Cursor[T] {
	return c
}
