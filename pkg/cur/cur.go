package cur

import "context"

// Pull produces the next value of a sequence. It returns ErrEndOfInput
// (or an error wrapping it) once the sequence is exhausted; any other
// error is a fault of the producer and is handed to the caller unchanged.
// A Pull is typically backed by something stateful, e.g. a work queue or
// a counter, so the callable itself owns the sequence position.
type Pull[T any] func(ctx context.Context) (T, error)

// Sink consumes one value of a sequence. A non-nil error is a fault of
// the consumer and is handed to the caller unchanged. There is no end
// signal on the sink side; the producer decides how many values flow.
type Sink[T any] func(ctx context.Context, v T) error
