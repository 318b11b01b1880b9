package seqs

import (
	"errors"
	"fmt"
)

// ErrCountOverflow is the panic value (wrapped) raised by [OverflowPanic]
// when more elements are discarded than the counter type can represent.
var ErrCountOverflow = errors.New("discard count overflow")

// Overflow selects what happens when the discard counter passes its maximum.
//
// Only [OverflowPanic] guarantees a correct or failing result. [OverflowWrap]
// and [OverflowSaturate] let the call complete with a count that is wrong.
type Overflow uint8

const (
	// OverflowWrap lets the counter wrap around to zero.
	OverflowWrap Overflow = iota
	// OverflowSaturate keeps the counter at its maximum value.
	OverflowSaturate
	// OverflowPanic panics with an error wrapping ErrCountOverflow.
	OverflowPanic
)

// DefaultOverflow is the policy used by [DiscardWhile] and every
// DiscardWhile method. It is fixed at compile time: building with
// `-tags checked` selects OverflowPanic, otherwise OverflowWrap.
func DefaultOverflow() Overflow {
	return defaultOverflow
}

func (o Overflow) String() string {
	switch o {
	case OverflowWrap:
		return "wrap"
	case OverflowSaturate:
		return "saturate"
	case OverflowPanic:
		return "panic"
	default:
		return fmt.Sprintf("Overflow(%d)", uint8(o))
	}
}

// ParseOverflow is the inverse of [Overflow.String]. "default" and the empty
// string resolve to [DefaultOverflow].
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "", "default":
		return DefaultOverflow(), nil
	case "wrap":
		return OverflowWrap, nil
	case "saturate":
		return OverflowSaturate, nil
	case "panic":
		return OverflowPanic, nil
	}
	return 0, fmt.Errorf("unknown overflow policy %q", s)
}

// MarshalText and UnmarshalText let an Overflow be used directly in config files.
func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Overflow) UnmarshalText(text []byte) error {
	v, err := ParseOverflow(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// increment adds one to n according to the policy.
func increment[N Unsigned](n N, overflow Overflow) N {
	if n != maxOf[N]() {
		return n + 1
	}
	switch overflow {
	case OverflowSaturate:
		return n
	case OverflowPanic:
		panic(fmt.Errorf("%w: more than %d elements discarded", ErrCountOverflow, uint64(n)))
	default:
		return n + 1
	}
}
