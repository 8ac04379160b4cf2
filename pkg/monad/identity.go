package monad

// Identity holds a single value. Bind passes it on without inspection.
type Identity[T any] struct {
	value T
}

func Of[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

func (m Identity[T]) Value() T {
	return m.value
}

// Bind applies f to the held value and returns whatever f returns
func (m Identity[T]) Bind(f func(T) Identity[T]) Identity[T] {
	return f(m.value)
}

// Bind is Identity.Bind for steps that change the value type
func Bind[T, U any](m Identity[T], f func(T) Identity[U]) Identity[U] {
	return f(m.value)
}

// Unit turns a plain function into an Identity step
func Unit[T, U any](f func(T) U) func(T) Identity[U] {
	return func(t T) Identity[U] {
		return Of(f(t))
	}
}
