package hw

import "fmt"

// Halfword is one 16-bit one's-complement s.15 register: a sign bit and 15
// fraction bits, covering roughly [-1, 1) in steps of 1/32768. One's
// complement has two zeros: +0 (all bits clear) and -0 (all bits set). They
// are distinct bit patterns and stay distinct until explicitly normalized.
type Halfword uint16

const (
	PlusZero  Halfword = 0x0000
	MinusZero Halfword = 0xFFFF
)

// Add performs 16-bit one's-complement addition with end-around carry: a
// carry out of bit 15 is folded back into bit 0. The raw sum is then put
// through an unconditional arithmetic right shift by one bit before being
// returned. The shift is how the hardware behaves, not an error; callers
// wanting the true sum pre-scale their operands by 2.
//
// There is no overflow trap. The algebra wraps on its own terms and can
// produce either zero representation.
func Add(a, b Halfword) Halfword {
	sum := uint32(a) + uint32(b)
	sum = (sum & 0xFFFF) + (sum >> 16)
	return asr(Halfword(sum))
}

// asr shifts right by one, duplicating the sign bit. Sign-fill is the
// correct halving for one's complement on both positive and negative values.
func asr(h Halfword) Halfword {
	return Halfword(int16(h) >> 1)
}

// Negate is bitwise complement. Negate(Negate(x)) == x for every x, but at
// zero the round trip crosses representations: Negate(+0) == -0 and
// Negate(-0) == +0.
func Negate(a Halfword) Halfword {
	return ^a
}

// IsZero reports whether h is either zero representation.
func (h Halfword) IsZero() bool {
	return h == PlusZero || h == MinusZero
}

// Normalize collapses -0 to +0 and leaves every other value alone.
func (h Halfword) Normalize() Halfword {
	if h == MinusZero {
		return PlusZero
	}
	return h
}

// Frac decodes h into the fraction it represents.
func (h Halfword) Frac() float64 {
	if h&0x8000 == 0 {
		return float64(h) / 32768
	}
	return -float64(^h) / 32768
}

// mag returns the signed magnitude of h in 1/32768 steps.
func (h Halfword) mag() int {
	if h&0x8000 == 0 {
		return int(h)
	}
	return -int(^h)
}

// FromFrac encodes v as an s.15 one's-complement fraction, clamping to the
// representable range. Negative values encode by complementing their
// magnitude, so FromFrac never produces -0.
func FromFrac(v float64) Halfword {
	neg := v < 0
	if neg {
		v = -v
	}
	m := int(v*32768 + 0.5)
	if m > 0x7FFF {
		m = 0x7FFF
	}
	h := Halfword(m)
	if neg {
		h = ^h
	}
	return h
}

func (h Halfword) String() string {
	return fmt.Sprintf("%04x(%+.5f)", uint16(h), h.Frac())
}

// Word is an ordered pair of halfwords processed as a unit. "Parallel"
// dual-halfword operation means one atomic operation touching both halves;
// no carry or any other arithmetic effect ever crosses between them.
type Word struct {
	L, R Halfword
}

// EncodeWord packs two fractions into a word.
func EncodeWord(l, r float64) Word {
	return Word{L: FromFrac(l), R: FromFrac(r)}
}

// AddWords applies Add independently to both halves, implicit shift
// included on each.
func AddWords(a, b Word) Word {
	return Word{L: Add(a.L, b.L), R: Add(a.R, b.R)}
}

// NegateWord complements both halves.
func NegateWord(a Word) Word {
	return Word{L: Negate(a.L), R: Negate(a.R)}
}

func (w Word) String() string {
	return fmt.Sprintf("[%s %s]", w.L, w.R)
}
