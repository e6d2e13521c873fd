package input

import (
	"context"

	"github.com/google/uuid"
	"github.com/vd-84/seqcur/pkg/cur"
	"github.com/vd-84/seqcur/pkg/cur/slot"
)

// pullState is shared between every copy of a cursor lineage. A value
// pulled during HasNext and the end transition must be visible to all
// copies, otherwise copying a cursor would re-trigger side-effecting
// pulls or lose a buffered value.
type pullState[T any] struct {
	id      uuid.UUID
	pull    cur.Pull[T]
	pending slot.Owned[T]
	last    bool
}

// Cursor is a single-pass producer backed by a cur.Pull. The zero
// Cursor is unbound and serves as the end sentinel. Copies of a bound
// cursor share one pullState; once the producer signals exhaustion the
// state is final and the producer is never invoked again.
type Cursor[T any] struct {
	s *pullState[T]
}

// From binds a fresh cursor lineage to the given producer.
func From[T any](pull cur.Pull[T]) Cursor[T] {
	return Cursor[T]{s: &pullState[T]{
		id:   uuid.New(),
		pull: pull,
	}}
}

// End returns the unbound end sentinel.
func End[T any]() Cursor[T] {
	return Cursor[T]{}
}

// Id identifies the cursor lineage; all copies report the same id. An
// unbound cursor reports the zero UUID.
func (c Cursor[T]) Id() uuid.UUID {
	if c.s == nil {
		return uuid.UUID{}
	}
	return c.s.id
}

// Advance is a no-op: this is a single-pass protocol and the pull
// happens lazily in Next or HasNext. It exists to satisfy the generic
// cursor shape and returns the cursor unchanged.
func (c Cursor[T]) Advance() Cursor[T] {
	return c
}

// AtEnd reports whether the cursor is unbound or exhausted. It never
// invokes the producer; use HasNext to probe for a next value.
func (c Cursor[T]) AtEnd() bool {
	return c.s == nil || c.s.last
}

// Next returns the next value of the sequence. A value buffered by a
// prior HasNext is returned first. On exhaustion Next returns
// cur.ErrEndOfInput once; any further call, and any call on an unbound
// cursor, returns cur.ErrPastEnd without invoking the producer. Any
// other producer error is returned unchanged and leaves the lineage in
// an undefined state.
func (c Cursor[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if c.s == nil {
		return zero, cur.ErrPastEnd
	}
	if c.s.pending.IsSet() {
		return c.s.pending.Extract(), nil
	}
	if c.s.last {
		return zero, cur.ErrPastEnd
	}

	v, err := c.s.pull(ctx)
	if err != nil {
		if cur.IsEnd(err) {
			c.s.last = true
			return zero, cur.ErrEndOfInput
		}
		return zero, err
	}
	return v, nil
}

// HasNext reports whether another value remains. If no value is
// buffered and the end has not been reached it performs the pull now
// and buffers the produced value, so a following Next does not invoke
// the producer again. Repeated calls without an intervening Next invoke
// the producer at most once.
func (c Cursor[T]) HasNext(ctx context.Context) (bool, error) {
	if c.s == nil || c.s.last {
		return false, nil
	}
	if c.s.pending.IsSet() {
		return true, nil
	}

	v, err := c.s.pull(ctx)
	if err != nil {
		if cur.IsEnd(err) {
			c.s.last = true
			return false, nil
		}
		return false, err
	}
	c.s.pending.Set(v)
	return true, nil
}

// Equal is an end-of-sequence test, not a content comparison: two
// cursors are equal iff both are at end. Probing for "at end" may
// require pulling, so Equal has the HasNext side effect on whichever
// side has not pulled yet; the pulled value stays buffered for Next.
// The intended idiom is comparing against End.
func (c Cursor[T]) Equal(ctx context.Context, other Cursor[T]) (bool, error) {
	if _, err := c.HasNext(ctx); err != nil {
		return false, err
	}
	if _, err := other.HasNext(ctx); err != nil {
		return false, err
	}
	return c.AtEnd() == other.AtEnd(), nil
}
