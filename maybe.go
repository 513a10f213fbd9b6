// Package maybe provides a generic container holding either one value or
// none, as a typed alternative to nil pointers and comma-ok pairs.
//
// A Maybe is always in exactly one of two variants, Just or Nothing, and
// is immutable once constructed. The zero value is Nothing. For comparable
// element types a Maybe itself is comparable, so it can be compared with
// == and used as a map key; two containers are equal iff both are Nothing,
// or both are Just holding equal values.
package maybe

import (
	"errors"
	"fmt"
)

// ErrNothing is the value passed to panic by Unwrap on a Nothing.
var ErrNothing = errors.New("maybe: cannot unwrap Nothing")

// Maybe holds one value of type T, or none.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just returns a container holding val. Every value is wrapped as-is,
// including zero values and nil pointers; use FromPtr to map nil to
// Nothing instead.
func Just[T any](val T) Maybe[T] {
	return Maybe[T]{value: val, present: true}
}

// Nothing returns an empty container.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr converts a possibly-nil pointer: nil becomes Nothing, anything
// else becomes Just of the pointed-to value.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Get returns the contained value and whether one is present. The value
// is the zero value of T when absent.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// Has reports whether the container holds a value.
func (m Maybe[T]) Has() bool {
	return m.present
}

// IsNothing reports whether the container is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

// Unwrap returns the contained value. It panics with ErrNothing if the
// container is empty; check Has first, or use UnwrapOr or Expect.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic(ErrNothing)
	}
	return m.value
}

// UnwrapOr returns the contained value, or def if the container is empty.
func (m Maybe[T]) UnwrapOr(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

// Expect returns the contained value. It panics with msg if the container
// is empty, for call sites where absence means a broken assumption.
func (m Maybe[T]) Expect(msg string) T {
	if !m.present {
		panic(msg)
	}
	return m.value
}

// Filter keeps the value only if pred holds for it.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// Default returns m unchanged if it holds a value, otherwise Just(val).
func (m Maybe[T]) Default(val T) Maybe[T] {
	if m.present {
		return m
	}
	return Just(val)
}

// And returns the first Nothing of the two, otherwise other.
func (m Maybe[T]) And(other Maybe[T]) Maybe[T] {
	if !m.present {
		return m
	}
	return other
}

// Or returns the first Just of the two, otherwise Nothing.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return other
}

// ToPtr returns a pointer to a copy of the contained value, or nil if the
// container is empty. It round-trips with FromPtr.
func (m Maybe[T]) ToPtr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}
