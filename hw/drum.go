package hw

import (
	"fmt"

	"anfsq7/emu/log"
)

// DrumField names one field of the drum: a fixed-length, index-addressed
// run of words. LRI carries long-range radar inputs, GFI gap-filler inputs,
// XTL cross-telling from adjacent sites, SDC the situation display output.
type DrumField uint8

//go:generate go tool stringer -type=DrumField

const (
	LRI DrumField = iota
	GFI
	XTL
	SDC

	numFields
)

// FieldByName resolves a drum field name.
func FieldByName(name string) (DrumField, error) {
	for f := DrumField(0); f < numFields; f++ {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown drum field %q", name)
}

// Direction tells which side of the drum a write comes from. Inbound writes
// are made by external device simulation and raise OD_* channels; outbound
// writes are made by the CPU and raise CD_* channels.
type Direction uint8

const (
	Inbound Direction = iota
	Outbound
)

func (d Direction) String() string {
	if d == Inbound {
		return "inbound"
	}
	return "outbound"
}

// AddressFault reports a drum access outside a field's bounds. It is
// non-fatal: the field contents are untouched and the caller decides
// whether to halt or skip.
type AddressFault struct {
	Field DrumField
	Addr  int
	Size  int
}

func (f *AddressFault) Error() string {
	return fmt.Sprintf("address fault: %s[%d] out of bounds (field size %d)", f.Field, f.Addr, f.Size)
}

// channel returns the status channel raised by a (field, direction) write,
// or false for SDC, which is drained by the display scan rather than
// signaled.
func channel(f DrumField, dir Direction) (Channel, bool) {
	switch f {
	case LRI:
		if dir == Inbound {
			return OD_LRI, true
		}
		return CD_LRI, true
	case GFI:
		if dir == Inbound {
			return OD_GFI, true
		}
		return CD_GFI, true
	case XTL:
		if dir == Inbound {
			return OD_XTL, true
		}
		return CD_XTL, true
	}
	return 0, false
}

// FieldSizes fixes the length of each drum field at construction.
type FieldSizes struct {
	LRI, GFI, XTL, SDC int
}

// DefaultFieldSizes matches the slot counts the control programs expect.
var DefaultFieldSizes = FieldSizes{LRI: 64, GFI: 64, XTL: 32, SDC: 256}

// Drum holds the field data and signals availability through the status
// register. Each slot is single-buffered: a write to a slot whose channel
// has not been drained silently discards the previous word. The slot value
// and the channel bit change inside one call, so within the single-threaded
// tick model they are one indivisible event; no reader sees new data with
// the old bit or the reverse.
type Drum struct {
	fields [numFields][]Word
	status *Status
}

func NewDrum(status *Status, sizes FieldSizes) *Drum {
	d := &Drum{status: status}
	d.fields[LRI] = make([]Word, sizes.LRI)
	d.fields[GFI] = make([]Word, sizes.GFI)
	d.fields[XTL] = make([]Word, sizes.XTL)
	d.fields[SDC] = make([]Word, sizes.SDC)
	return d
}

// WriteField stores w into field[addr] and raises the channel matching
// (field, dir). Returns an *AddressFault and leaves everything unchanged
// when addr is out of the field's bounds.
func (d *Drum) WriteField(field DrumField, addr int, w Word, dir Direction) error {
	slots := d.fields[field]
	if addr < 0 || addr >= len(slots) {
		return &AddressFault{Field: field, Addr: addr, Size: len(slots)}
	}

	ch, ok := channel(field, dir)
	if ok && d.status.Check(ch) {
		// Single-buffered by design: the undrained word is lost.
		log.ModDrum.DebugZ("overwriting undrained slot").
			Stringer("field", field).
			Int("addr", addr).
			Stringer("ch", ch).
			End()
	}

	slots[addr] = w
	if ok {
		d.status.set(ch)
	}
	return nil
}

// ReadField returns field[addr]. Pure: never touches the status register.
func (d *Drum) ReadField(field DrumField, addr int) (Word, error) {
	slots := d.fields[field]
	if addr < 0 || addr >= len(slots) {
		return Word{}, &AddressFault{Field: field, Addr: addr, Size: len(slots)}
	}
	return slots[addr], nil
}

// Field exposes a field's backing slots. Poll handlers receive this slice
// to drain inbound data in place.
func (d *Drum) Field(f DrumField) []Word {
	return d.fields[f]
}

// Size returns the slot count of a field.
func (d *Drum) Size(f DrumField) int {
	return len(d.fields[f])
}
