package monad

import "fmt"

// Maybe is either Just a value or Nothing. The zero Maybe is Nothing.
type Maybe[T any] struct {
	value   T
	present bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Nothing for a nil pointer and Just(*p) otherwise
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromNillable returns Nothing when v is nil or a typed nil
func FromNillable[T any](v T) Maybe[T] {
	if IsNil(v) {
		return Nothing[T]()
	}
	return Just(v)
}

// FromOk converts a comma-ok pair
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) OrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

// Bind returns m itself when it is Nothing; f is not called.
// Otherwise it returns f applied to the held value.
func (m Maybe[T]) Bind(f func(T) Maybe[T]) Maybe[T] {
	if !m.present {
		return m
	}
	return f(m.value)
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "absent"
	}
	return fmt.Sprint(m.value)
}

// BindMaybe is Maybe.Bind for steps that change the value type
func BindMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return f(m.value)
}

func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// Lift turns a plain function into a Maybe step
func Lift[T, U any](f func(T) U) func(T) Maybe[U] {
	return func(t T) Maybe[U] {
		return Just(f(t))
	}
}

// Match collapses m into R. Both branches are required.
func Match[T, R any](m Maybe[T], onPresent func(T) R, onAbsent func() R) R {
	if m.present {
		return onPresent(m.value)
	}
	return onAbsent()
}
