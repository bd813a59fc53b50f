package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecode(t *testing.T) {
	core := &Core{
		Version: Version,
		CPU: CPU{
			ACC:    [2]uint16{0x4000, 0xFFFF},
			PC:     0x0123,
			Fault:  true,
			Cycles: 42,
			Core:   []uint16{0x1805, 0x2806, 0x0000},
		},
		Drum: Drum{
			LRI: [][2]uint16{{0x1111, 0x2222}, {0, 0xFFFF}},
			GFI: [][2]uint16{},
			XTL: [][2]uint16{{0x4000, 0x2000}},
			SDC: [][2]uint16{{7, 8}},
		},
		Status: 0b0101101,
		Gun: LightGun{
			State:   2,
			TargetX: 0x2000,
			TargetY: 0xDFFF,
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, core); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	// GFI is empty; nil and empty both mean "no words".
	opt := cmp.Comparer(func(a, b [][2]uint16) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})
	if diff := cmp.Diff(core, got, opt); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Core{Version: Version + 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); err == nil {
		t.Error("Decode should reject an unsupported version")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not json at all")); err == nil {
		t.Error("Decode should fail on garbage input")
	}
}
