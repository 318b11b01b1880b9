package seqs

// LimitIter yields at most a fixed number of values from another Iterator.
type LimitIter[T any] struct {
	it   Iterator[T]
	left uint
}

// Limit bounds it to n values. It never pulls from it beyond the bound, so
// the rest of it stays available to the caller.
func Limit[T any](it Iterator[T], n uint) *LimitIter[T] {
	return &LimitIter[T]{it: it, left: n}
}

func (l *LimitIter[T]) Next() (T, bool) {
	if l.left == 0 {
		var zero T
		return zero, false
	}
	v, ok := l.it.Next()
	if !ok {
		l.left = 0
		return v, false
	}
	l.left--
	return v, true
}

func (l *LimitIter[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(l, predicate)
}

// ChainIter yields the values of several Iterators one after another.
type ChainIter[T any] struct {
	its []Iterator[T]
}

func Chain[T any](its ...Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{its: its}
}

func (c *ChainIter[T]) Next() (T, bool) {
	for len(c.its) > 0 {
		if v, ok := c.its[0].Next(); ok {
			return v, true
		}
		c.its[0] = nil
		c.its = c.its[1:]
	}
	var zero T
	return zero, false
}

func (c *ChainIter[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(c, predicate)
}

// Inspect calls fn with every value as it is pulled from it.
func Inspect[T any](it Iterator[T], fn func(T)) NextFunc[T] {
	return func() (T, bool) {
		v, ok := it.Next()
		if ok {
			fn(v)
		}
		return v, ok
	}
}
