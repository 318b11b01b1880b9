//go:build checked

package seqs

const defaultOverflow = OverflowPanic
