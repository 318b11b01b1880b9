package seqs

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of counter types accepted by [DiscardWhileN].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

// maxOf returns the largest value representable by N.
func maxOf[N Unsigned]() N {
	return ^N(0)
}
