// Package lazy provides a memoizing wrapper around a deferred
// computation. A Lazy holds a zero-argument evaluator and caches its
// result in a maybe.Maybe the first time it is forced; later forces
// return the cached value without re-running the evaluator.
//
// Forcing is safe for concurrent use: the cache transition is guarded by
// a mutex. Evaluator failures are not memoized, so a failed force leaves
// the cache empty and the next force runs the evaluator again.
//
// Lazy values carry a function field and are therefore not comparable;
// only pointer identity of *Lazy is meaningful. They cannot be
// serialized.
package lazy

import (
	"fmt"
	"sync"

	"github.com/aertje/maybe"
)

// Lazy defers a computation producing T and memoizes its result.
// Use New or Wrap; the zero value has no evaluator and cannot be forced.
type Lazy[T any] struct {
	mu    sync.Mutex
	eval  func() (T, error)
	cache maybe.Maybe[T]
}

// New returns an unevaluated Lazy around eval. The evaluator runs at
// most once successfully, on the first Force that does not fail.
func New[T any](eval func() (T, error)) *Lazy[T] {
	return &Lazy[T]{eval: eval}
}

// Wrap returns an already-evaluated Lazy holding val, for satisfying a
// Lazy-typed contract with a value that is known up front.
func Wrap[T any](val T) *Lazy[T] {
	return &Lazy[T]{cache: maybe.Just(val)}
}

// Force returns the cached value if present; otherwise it runs the
// evaluator, caches the result on success and returns it. An evaluator
// error is returned verbatim and leaves the cache empty, so a later
// Force retries.
func (l *Lazy[T]) Force() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.cache.Get(); ok {
		return v, nil
	}
	v, err := l.eval()
	if err != nil {
		var zero T
		return zero, err
	}
	l.cache = maybe.Just(v)
	return v, nil
}

// IsEvaluated reports whether a result has been cached, without forcing.
func (l *Lazy[T]) IsEvaluated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Has()
}

func (l *Lazy[T]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.cache.Get(); ok {
		return fmt.Sprintf("Lazy(%v)", v)
	}
	return "Lazy(?)"
}

// Map returns a new Lazy that forces l and applies f to the result.
// Neither l nor f runs until the returned Lazy is forced; its own cache
// then ensures f runs at most once.
func Map[T, U any](l *Lazy[T], f func(T) U) *Lazy[U] {
	return New(func() (U, error) {
		v, err := l.Force()
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

// Zip returns a new Lazy pairing the results of a and b. Forcing it
// forces a first, then b.
func Zip[A, B any](a *Lazy[A], b *Lazy[B]) *Lazy[maybe.Pair[A, B]] {
	return New(func() (maybe.Pair[A, B], error) {
		av, err := a.Force()
		if err != nil {
			return maybe.Pair[A, B]{}, err
		}
		bv, err := b.Force()
		if err != nil {
			return maybe.Pair[A, B]{}, err
		}
		return maybe.Pair[A, B]{First: av, Second: bv}, nil
	})
}

// Flatten collapses one level of nesting. Forcing the result forces the
// outer Lazy, then the inner one it produced. Each underlying evaluator
// still runs at most once: pre-forced outer or inner values are served
// from their own caches.
func Flatten[T any](l *Lazy[*Lazy[T]]) *Lazy[T] {
	return New(func() (T, error) {
		inner, err := l.Force()
		if err != nil {
			var zero T
			return zero, err
		}
		return inner.Force()
	})
}
