package slot

// View is the read side shared by both slot kinds.
type View[T any] interface {
	// Get returns the current content without consuming it
	Get() T
	// Extract returns the current content, consuming it where the slot
	// owns the value
	Extract() T
	// IsSet reports whether the slot currently holds a readable value
	IsSet() bool
}

// Owned stores a value of its own. Extract hands the value out and
// leaves the slot empty, so a buffered value cannot be observed twice.
type Owned[T any] struct {
	value T
	set   bool
}

func (s *Owned[T]) Set(v T) {
	s.value = v
	s.set = true
}

func (s *Owned[T]) Get() T {
	return s.value
}

func (s *Owned[T]) Extract() T {
	v := s.value
	var zero T
	s.value = zero
	s.set = false
	return v
}

func (s *Owned[T]) IsSet() bool {
	return s.set
}

// Borrowed stores the address of a value owned elsewhere. Get and
// Extract both re-read through the address, so repeated Extract is
// idempotent. The referent must outlive every read; the slot never
// extends its lifetime.
type Borrowed[T any] struct {
	ref *T
}

func (s *Borrowed[T]) Bind(ref *T) {
	s.ref = ref
}

func (s *Borrowed[T]) Get() T {
	return *s.ref
}

func (s *Borrowed[T]) Extract() T {
	return *s.ref
}

func (s *Borrowed[T]) IsSet() bool {
	return s.ref != nil
}
