package maybe

import (
	"errors"
	"iter"
)

// A Maybe can be viewed as an ordered sequence of zero or one elements.
// Len, At, Slice and Values make that view explicit.

// ErrIndexOutOfRange is the value passed to panic by At for any index
// that does not address the contained value.
var ErrIndexOutOfRange = errors.New("maybe: index out of range")

// ErrZeroStep is the value passed to panic by Slice when step is zero.
var ErrZeroStep = errors.New("maybe: slice step cannot be zero")

// Len returns the number of contained values, 0 or 1.
func (m Maybe[T]) Len() int {
	if m.present {
		return 1
	}
	return 0
}

// At returns the element at index i of the sequence view. Only index 0 of
// a Just is addressable; any other access panics with ErrIndexOutOfRange.
func (m Maybe[T]) At(i int) T {
	if !m.present || i != 0 {
		panic(ErrIndexOutOfRange)
	}
	return m.value
}

// Slice applies [start:stop:step] slicing to the sequence view and
// returns the resulting sub-container. Bounds follow the usual slicing
// rules for sequences: they are clamped to the sequence length, negative
// indices count from the end, and a negative step walks backwards. A
// slice covering index 0 of a Just yields the same Just; every other
// slice yields Nothing. Slice panics with ErrZeroStep if step is zero.
func (m Maybe[T]) Slice(start, stop, step int) Maybe[T] {
	if step == 0 {
		panic(ErrZeroStep)
	}
	if !m.present {
		return Nothing[T]()
	}

	// Clamp bounds for a sequence of length 1.
	lower, upper := 0, 1
	if step < 0 {
		lower, upper = -1, 0
	}
	if start < 0 {
		start = max(start+1, lower)
	} else {
		start = min(start, upper)
	}
	if stop < 0 {
		stop = max(stop+1, lower)
	} else {
		stop = min(stop, upper)
	}

	// The single element lives at index 0; it is included iff the
	// clamped slice starts there and extends past it.
	if step > 0 && start == 0 && stop > 0 {
		return m
	}
	if step < 0 && start == 0 && stop < 0 {
		return m
	}
	return Nothing[T]()
}

// Values returns an iterator over the contained value, if any. The
// sequence is finite and restartable: ranging over it again revisits the
// same zero or one elements.
func (m Maybe[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.present {
			yield(m.value)
		}
	}
}
