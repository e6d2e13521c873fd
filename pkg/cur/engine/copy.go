package engine

import (
	"context"

	"github.com/vd-84/seqcur/pkg/cur"
	"github.com/vd-84/seqcur/pkg/cur/input"
	"github.com/vd-84/seqcur/pkg/cur/output"
)

// Copy routes every value of the range into the output cursor and
// returns the number of values copied. It stops on the first producer
// or sink error.
func Copy[T any](ctx context.Context, r input.Range[T], out output.Cursor[T]) (int, error) {
	return Drain(ctx, r.Begin(), out.Put)
}

// Drain pulls the cursor dry, handing every value to the sink, and
// returns the number of values consumed. It stops on the first
// producer or sink error.
func Drain[T any](ctx context.Context, it input.Cursor[T], sink cur.Sink[T]) (int, error) {
	n := 0
	for {
		ok, err := it.HasNext(ctx)
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}

		v, err := it.Next(ctx)
		if err != nil {
			return n, err
		}
		if err = sink(ctx, v); err != nil {
			return n, err
		}
		n++
	}
}
