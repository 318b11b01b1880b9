package seqs

// Iterator is a forward, single-pass source of values.
//
// Next returns the next value and true, or the zero value and false once the
// source is exhausted. An exhausted Iterator keeps returning false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// NextFunc adapts a plain function, such as the next function returned by
// iter.Pull, to an Iterator.
type NextFunc[T any] func() (T, bool)

func (f NextFunc[T]) Next() (T, bool) {
	return f()
}

func (f NextFunc[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(f, predicate)
}

// Cursor gives any Iterator the DiscardWhile method.
//
//	v, ok, n := seqs.On(it).DiscardWhile(isComment)
type Cursor[T any] struct {
	it Iterator[T]
}

// On wraps it. The Cursor and it share position.
func On[T any](it Iterator[T]) Cursor[T] {
	return Cursor[T]{it: it}
}

func (c Cursor[T]) Next() (T, bool) {
	if c.it == nil {
		var zero T
		return zero, false
	}
	return c.it.Next()
}

// DiscardWhile is [DiscardWhile] as a method.
func (c Cursor[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(c, predicate)
}
