package hw

import (
	"math"
	"testing"
)

func TestAddImplicitShift(t *testing.T) {
	// 0.5 + ~0.4: raw one's-complement sum is 0x7333, the post-add shift
	// turns it into 0x3999 (~0.45). Bit-for-bit, always.
	if got := Add(0x4000, 0x3333); got != 0x3999 {
		t.Errorf("Add(0x4000, 0x3333) = %04x, want 3999", uint16(got))
	}
}

func TestAddEndAroundCarry(t *testing.T) {
	tests := []struct {
		a, b, want Halfword
	}{
		{0x7FFF, 0x0001, 0xC000},    // +max plus one ulp wraps negative
		{0x4000, 0xBFFF, MinusZero}, // x + Negate(x) == -0
		{0xFFFF, 0xFFFF, MinusZero}, // -0 + -0 carries end-around back to -0
		{0xFFFF, 0x0001, 0x0000},    // -0 + ulp: carry folds, shift drops the ulp
		{0x0000, 0x0000, 0x0000},
		{0x2000, 0x2000, 0x2000}, // 0.25 + 0.25, shifted back to 0.25
	}
	for _, tt := range tests {
		got := Add(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Add(%04x, %04x) = %04x, want %04x",
				uint16(tt.a), uint16(tt.b), uint16(got), uint16(tt.want))
		}
		// Same operands, same bits, every time.
		if again := Add(tt.a, tt.b); again != got {
			t.Errorf("Add(%04x, %04x) not deterministic: %04x then %04x",
				uint16(tt.a), uint16(tt.b), uint16(got), uint16(again))
		}
	}
}

func TestNegateRoundTrip(t *testing.T) {
	for i := 0; i < 0x10000; i++ {
		x := Halfword(i)
		if Negate(Negate(x)) != x {
			t.Fatalf("Negate(Negate(%04x)) != %04x", i, i)
		}
	}

	// At zero the round trip crosses representations, it has no fixed point.
	if got := Negate(PlusZero); got != MinusZero {
		t.Errorf("Negate(+0) = %04x, want ffff", uint16(got))
	}
	if got := Negate(MinusZero); got != PlusZero {
		t.Errorf("Negate(-0) = %04x, want 0000", uint16(got))
	}
	if PlusZero == MinusZero {
		t.Error("zero representations must stay distinct")
	}
}

func TestZeroRepresentations(t *testing.T) {
	if !PlusZero.IsZero() || !MinusZero.IsZero() {
		t.Error("both zero representations must report IsZero")
	}
	if Halfword(0x0001).IsZero() {
		t.Error("0x0001 is not zero")
	}
	if got := MinusZero.Normalize(); got != PlusZero {
		t.Errorf("Normalize(-0) = %04x, want +0", uint16(got))
	}
	if got := Halfword(0x4000).Normalize(); got != 0x4000 {
		t.Errorf("Normalize(0x4000) = %04x, want 4000", uint16(got))
	}
}

func TestWordHalvesIndependent(t *testing.T) {
	// The left half wraps; the right half must not see any of it.
	a := Word{L: 0x7FFF, R: 0x0001}
	b := Word{L: 0x0001, R: 0x0002}
	got := AddWords(a, b)
	want := Word{L: 0xC000, R: 0x0001}
	if got != want {
		t.Errorf("AddWords = %s, want %s", got, want)
	}

	if got := NegateWord(Word{L: 0x4000, R: PlusZero}); got != (Word{L: 0xBFFF, R: MinusZero}) {
		t.Errorf("NegateWord = %s", got)
	}
}

func TestFracRoundTrip(t *testing.T) {
	for v := -0.999; v < 1.0; v += 0.001 {
		h := FromFrac(v)
		if d := math.Abs(h.Frac() - v); d > 1.0/32768 {
			t.Fatalf("FromFrac(%v).Frac() = %v, off by %v", v, h.Frac(), d)
		}
	}

	// Exact encodings.
	if got := FromFrac(0.5); got != 0x4000 {
		t.Errorf("FromFrac(0.5) = %04x, want 4000", uint16(got))
	}
	if got := FromFrac(0.25); got != 0x2000 {
		t.Errorf("FromFrac(0.25) = %04x, want 2000", uint16(got))
	}
	if got := FromFrac(-0.5); got != 0xBFFF {
		t.Errorf("FromFrac(-0.5) = %04x, want bfff", uint16(got))
	}
	// Clamped, never wrapped.
	if got := FromFrac(2.0); got != 0x7FFF {
		t.Errorf("FromFrac(2.0) = %04x, want 7fff", uint16(got))
	}
	if got := FromFrac(-2.0); got != 0x8000 {
		t.Errorf("FromFrac(-2.0) = %04x, want 8000", uint16(got))
	}
}
