package seqs

// SliceIter is a cursor over a slice. It does not copy the slice.
type SliceIter[T any] struct {
	s []T
}

// Values returns an Iterator over the elements of s in order.
func Values[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s}
}

func (si *SliceIter[T]) Next() (v T, ok bool) {
	if len(si.s) == 0 {
		return v, false
	}
	v = si.s[0]
	si.s = si.s[1:]
	return v, true
}

// Rest returns the elements not yet pulled.
func (si *SliceIter[T]) Rest() []T {
	return si.s
}

func (si *SliceIter[T]) Len() int {
	return len(si.s)
}

func (si *SliceIter[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(si, predicate)
}

// Range yields the integers first, first+1, ..., last.
type Range[T Integer] struct {
	next T
	last T
	done bool
}

// NewRange returns the inclusive range first..=last. It is empty when
// first > last. last may be the maximum value of T.
func NewRange[T Integer](first, last T) *Range[T] {
	return &Range[T]{next: first, last: last, done: first > last}
}

func (r *Range[T]) Next() (T, bool) {
	if r.done {
		var zero T
		return zero, false
	}
	v := r.next
	if v == r.last {
		// stop here instead of incrementing past the maximum of T
		r.done = true
	} else {
		r.next++
	}
	return v, true
}

func (r *Range[T]) IsEmpty() bool {
	return r.done
}

// Bounds returns the remaining inclusive bounds, or ok == false if the range
// is exhausted.
func (r *Range[T]) Bounds() (first, last T, ok bool) {
	if r.done {
		return first, last, false
	}
	return r.next, r.last, true
}

func (r *Range[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(r, predicate)
}
