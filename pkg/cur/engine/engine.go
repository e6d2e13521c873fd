package engine

import (
	"context"

	"github.com/vd-84/seqcur/pkg/cur"
)

// PullChan adapts a work-engine result channel into a producer. The
// pull blocks until a value arrives, returns cur.ErrEndOfInput once the
// channel is closed, and reports ctx.Err() as a fault when the context
// is canceled while waiting.
func PullChan[T any](ch <-chan T) cur.Pull[T] {
	return func(ctx context.Context) (T, error) {
		var zero T

		select {
		case v, ok := <-ch:
			if !ok {
				return zero, cur.ErrEndOfInput
			}
			return v, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// PullSlice adapts a slice into a counter-backed producer. The counter
// lives in the closure, so every cursor lineage created over the same
// pull continues where the previous one stopped.
func PullSlice[T any](vs []T) cur.Pull[T] {
	i := 0
	return func(ctx context.Context) (T, error) {
		var zero T

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if i >= len(vs) {
			return zero, cur.ErrEndOfInput
		}

		v := vs[i]
		i++
		return v, nil
	}
}

// SinkChan adapts a work-engine submission channel into a sink. The
// send blocks until accepted and reports ctx.Err() as a fault when the
// context is canceled while waiting.
func SinkChan[T any](ch chan<- T) cur.Sink[T] {
	return func(ctx context.Context, v T) error {
		select {
		case ch <- v:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// SinkCollect records every value into dst, in assignment order.
func SinkCollect[T any](dst *[]T) cur.Sink[T] {
	return func(_ context.Context, v T) error {
		*dst = append(*dst, v)
		return nil
	}
}
