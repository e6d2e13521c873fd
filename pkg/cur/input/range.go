package input

import (
	"context"

	"github.com/vd-84/seqcur/pkg/cur"
	"github.com/vd-84/seqcur/pkg/cur/slot"
)

// Range pairs a begin and an end cursor over one shared producer.
// The producer, not the range, owns the sequence position: every call
// to Begin starts a fresh cursor lineage that continues pulling from
// wherever the producer currently is.
type Range[T any] struct {
	fn slot.Borrowed[cur.Pull[T]]
}

// NewRange creates an iterable range over the given producer.
func NewRange[T any](pull cur.Pull[T]) Range[T] {
	var r Range[T]
	r.fn.Bind(&pull)
	return r
}

// Begin returns a fresh bound cursor over the shared producer.
func (r Range[T]) Begin() Cursor[T] {
	return From(r.fn.Get())
}

// End returns the unbound end sentinel.
func (r Range[T]) End() Cursor[T] {
	return End[T]()
}

// ForEach drains a fresh cursor, calling fn for every produced value.
// It stops on the first error from the producer or from fn and returns
// it; normal exhaustion returns nil.
func (r Range[T]) ForEach(ctx context.Context, fn func(ctx context.Context, v T) error) error {
	it := r.Begin()
	for {
		ok, err := it.HasNext(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		v, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if err = fn(ctx, v); err != nil {
			return err
		}
	}
}

// Collect drains a fresh cursor into a slice.
func (r Range[T]) Collect(ctx context.Context) ([]T, error) {
	res := make([]T, 0)
	err := r.ForEach(ctx, func(_ context.Context, v T) error {
		res = append(res, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
