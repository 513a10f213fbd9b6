package maybe

// Type-changing combinators live at package level because Go methods
// cannot introduce type parameters.

// Pair combines two values, as produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map applies f to the contained value without unwrapping it. Nothing
// passes through unchanged.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// FlatMap applies f, which itself returns a Maybe, to the contained value
// and flattens the result. Nothing short-circuits.
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return f(m.value)
}

// Zip combines two containers into one holding both values, if both are
// present. Any Nothing operand yields Nothing.
func Zip[A, B any](a Maybe[A], b Maybe[B]) Maybe[Pair[A, B]] {
	if !a.present || !b.present {
		return Nothing[Pair[A, B]]()
	}
	return Just(Pair[A, B]{First: a.value, Second: b.value})
}

// Flatten collapses one level of nesting.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if !m.present {
		return Nothing[T]()
	}
	return m.value
}

// Contains reports whether the container holds a value equal to v.
func Contains[T comparable](m Maybe[T], v T) bool {
	return m.present && m.value == v
}
