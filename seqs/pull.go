package seqs

import "iter"

// Puller turns a push sequence into an Iterator using iter.Pull.
//
// Stop must be called once the Puller is no longer needed, unless it has
// been drained.
type Puller[T any] struct {
	next func() (T, bool)
	stop func()
}

func Pull[T any](seq iter.Seq[T]) *Puller[T] {
	next, stop := iter.Pull(seq)
	return &Puller[T]{next: next, stop: stop}
}

func (p *Puller[T]) Next() (T, bool) {
	return p.next()
}

// Stop releases the underlying sequence. Next returns false afterwards.
func (p *Puller[T]) Stop() {
	p.stop()
}

func (p *Puller[T]) DiscardWhile(predicate func(T) bool) (T, bool, uint) {
	return DiscardWhile(p, predicate)
}
