package cur

import "errors"

// ErrEndOfInput is the exhaustion signal of a Pull. It is a normal,
// expected outcome: loops terminate on it. Producers return it (or wrap
// it) when the sequence has no more values.
var ErrEndOfInput = errors.New("cur: end of input")

// ErrPastEnd reports a read on a cursor that is already exhausted or was
// never bound to a producer. This is a programming error of the caller;
// the backing callable is not invoked.
var ErrPastEnd = errors.New("cur: read past end of input")

func IsEnd(err error) bool {
	return errors.Is(err, ErrEndOfInput)
}

func IsPastEnd(err error) bool {
	return errors.Is(err, ErrPastEnd)
}
