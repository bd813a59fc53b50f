// Package snapshot holds plain serializable records of the whole machine
// state: an exact field-for-field copy, enough to save and resume a run.
package snapshot

// Version is the current snapshot format version.
const Version = 1

type Core struct {
	Version int
	CPU     CPU
	Drum    Drum
	Status  uint32
	Gun     LightGun
}

type CPU struct {
	ACC    [2]uint16
	PC     uint16
	Fault  bool
	Halted bool
	Cycles int64
	Core   []uint16
}

// Drum stores each field's words as raw (left, right) bit pairs.
type Drum struct {
	LRI [][2]uint16
	GFI [][2]uint16
	XTL [][2]uint16
	SDC [][2]uint16
}

type LightGun struct {
	State   uint8
	TargetX uint16
	TargetY uint16
}
