package monad

type ValueProvider[T any] interface {
	// Value returns the held value, or the zero value when there is none
	Value() T
}

// Optional extends ValueProvider with a presence flag
type Optional[T any] interface {
	ValueProvider[T]
	// IsPresent returns false once the value is absent
	IsPresent() bool
}
