package pubsub

import "slices"

// Signal is a synchronous notification carrying a payload of type T. Handlers
// run on the emitting goroutine, in the order in which they were connected,
// and each runs to completion before the next. The zero value is ready to
// use. A Signal is not safe for concurrent use.
type Signal[T any] struct {
	slots   []*slot[T]
	blocked bool
}

type slot[T any] struct {
	fn func(T)
}

// Connect registers fn to be invoked upon every emission. The returned
// function disconnects fn; calling it more than once is harmless.
func (s *Signal[T]) Connect(fn func(T)) (disconnect func()) {
	sl := &slot[T]{fn: fn}
	s.slots = append(s.slots, sl)
	return func() {
		s.slots = slices.DeleteFunc(s.slots, func(existing *slot[T]) bool {
			return existing == sl
		})
	}
}

// Emit invokes connected handlers with payload, unless the signal is blocked.
func (s *Signal[T]) Emit(payload T) {
	if s.blocked {
		return
	}
	// Handlers may connect or disconnect during emission.
	for _, sl := range slices.Clone(s.slots) {
		sl.fn(payload)
	}
}

// Block suppresses (true) or resumes (false) emissions, returning the previous
// state so that callers can restore it.
func (s *Signal[T]) Block(block bool) (previous bool) {
	previous = s.blocked
	s.blocked = block
	return previous
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}
