// Package maybe provides a generic optional value used for parameter
// defaults and other "present or not" slots.
package maybe

// Maybe holds either a value of type T or nothing. The zero Maybe is
// empty.
type Maybe[T any] struct {
	val T
	ok  bool
}

// Some returns a Maybe containing v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{val: v, ok: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Has reports whether a value is present.
func (m Maybe[T]) Has() bool { return m.ok }

// Value returns the contained value. Accessing an empty Maybe is a
// programming error and panics.
func (m Maybe[T]) Value() T {
	if !m.ok {
		panic("maybe: no contained value")
	}

	return m.val
}

// ValueOr returns the contained value, or other when empty.
func (m Maybe[T]) ValueOr(other T) T {
	if m.ok {
		return m.val
	}

	return other
}

// Set stores v, replacing any previous value.
func (m *Maybe[T]) Set(v T) {
	m.val = v
	m.ok = true
}

// Clear empties the Maybe.
func (m *Maybe[T]) Clear() {
	var zero T
	m.val = zero
	m.ok = false
}

// Release returns the contained value and empties the Maybe. Releasing
// an empty Maybe panics.
func (m *Maybe[T]) Release() T {
	v := m.Value()
	m.Clear()
	return v
}
