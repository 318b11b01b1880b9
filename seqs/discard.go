package seqs

// DiscardWhile advances it as long as predicate holds for the pulled values.
// It returns the first value for which predicate is false, if any, and the
// number of values discarded before it.
//
// When it is exhausted before such a value appears, ok is false, v is the
// zero value and n is the number of values pulled. On return it is positioned
// just after v, or exhausted.
//
// predicate is called exactly once per pulled value. If it never returns false
// on an infinite source, DiscardWhile never returns; bound the source with
// [Limit] when that matters.
//
// # Overflow
//
// The count is not guarded beyond [DefaultOverflow]: with more than
// math.MaxUint discarded values the result is wrong (OverflowWrap) unless the
// module is built with `-tags checked`, in which case it panics with
// [ErrCountOverflow]. Use [DiscardWhileN] to choose explicitly.
func DiscardWhile[T any](it Iterator[T], predicate func(T) bool) (v T, ok bool, n uint) {
	return DiscardWhileN[uint](it, predicate, defaultOverflow)
}

// DiscardWhileN is [DiscardWhile] with a caller-chosen counter type and
// overflow policy.
func DiscardWhileN[N Unsigned, T any](it Iterator[T], predicate func(T) bool, overflow Overflow) (T, bool, N) {
	var n N
	for {
		v, ok := it.Next()
		if !ok {
			var zero T
			return zero, false, n
		}
		if !predicate(v) {
			return v, true, n
		}
		n = increment(n, overflow)
	}
}
