/*
Package seqs provides pull-style iterators and the [DiscardWhile] operation on them.

An [Iterator] is a forward, single-pass source: every call to Next consumes a value.
[DiscardWhile] pulls values while a predicate holds and hands back the first value that
fails it, together with how many values were thrown away:

	r := seqs.NewRange(1, 10)
	v, ok, n := seqs.DiscardWhile(r, func(x int) bool { return x != 5 })
	// v == 5, ok == true, n == 4, r now yields 6..10

The same call is available as a method on every iterator in this package and, through
[On], on any other Iterator.

  - **Sources**: [Values] (slices), [NewRange] (inclusive integer ranges), [Pull] (any iter.Seq),
    [Lines] (io.Reader), [NextFunc] (plain functions).
  - **Adapters**: [Limit], [Chain], [Inspect].
  - **Sinks**: [Rest], [Collect], [Count].

# Overflow

The discard counter of [DiscardWhile] is a uint and is not guarded by default: past
its maximum the result silently wraps. Building with `-tags checked` turns the same
condition into a panic wrapping [ErrCountOverflow]. [DiscardWhileN] takes the counter
type and the [Overflow] policy explicitly.

# Concurrency

Nothing here is safe for concurrent use. An Iterator belongs to one goroutine at a time,
and DiscardWhile runs to completion on the calling goroutine.
*/
package seqs
