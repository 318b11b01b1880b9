package seqs

import (
	"bufio"
	"io"
)

// MaxLineSize is the longest line a LineIter accepts.
const MaxLineSize = 1 << 20

// LineIter yields the lines of a reader without their line endings.
type LineIter struct {
	sc   *bufio.Scanner
	done bool
}

func Lines(r io.Reader) *LineIter {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &LineIter{sc: sc}
}

func (l *LineIter) Next() (string, bool) {
	if l.done {
		return "", false
	}
	if l.sc.Scan() {
		return l.sc.Text(), true
	}
	l.done = true
	return "", false
}

// Err returns the first read error, if any. An error ends the iteration
// early, so check Err after Next returns false.
func (l *LineIter) Err() error {
	return l.sc.Err()
}

func (l *LineIter) DiscardWhile(predicate func(string) bool) (string, bool, uint) {
	return DiscardWhile(l, predicate)
}
