package hw

import (
	"errors"
	"fmt"

	"anfsq7/emu/log"
)

// Channel names one bit of the status register. The machine has no
// interrupts: devices raise a channel when data lands and the computer
// program discovers it by polling. CD_* channels signal computer-to-drum
// (outbound) writes, OD_* channels signal drum-to-computer (inbound) writes
// from external devices, LIGHT_GUN signals a detected flash.
type Channel uint8

//go:generate go tool stringer -type=Channel

const (
	CD_LRI Channel = iota
	CD_GFI
	CD_XTL
	OD_LRI
	OD_GFI
	OD_XTL
	LIGHT_GUN

	numChannels
)

// ErrUnknownChannel is returned by the name-based API when the caller asks
// for a channel that does not exist.
var ErrUnknownChannel = errors.New("unknown status channel")

// ChannelByName resolves a channel name ("OD_LRI", "LIGHT_GUN", ...).
func ChannelByName(name string) (Channel, error) {
	for ch := Channel(0); ch < numChannels; ch++ {
		if ch.String() == name {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// Status is the status register: a set of named single-bit channels. A bit,
// once set, persists across any number of Check calls until its consumer
// clears it. Role separation replaces locking: the CPU is the only clearer
// of every channel and the only setter of CD_*, external device simulation
// the only setter of OD_*, the light gun the only setter of LIGHT_GUN.
//
// Zero value is all channels clear.
type Status struct {
	bits uint32
}

func validCh(ch Channel) {
	if ch >= numChannels {
		panic(fmt.Sprintf("invalid status channel %d", ch))
	}
}

// Check peeks at a channel. No side effect.
func (s *Status) Check(ch Channel) bool {
	validCh(ch)
	return s.bits&(1<<ch) != 0
}

// Clear acknowledges a channel. Consumer-only. Clearing an already-clear
// channel is a no-op, not an error.
func (s *Status) Clear(ch Channel) {
	validCh(ch)
	s.bits &^= 1 << ch
}

// set raises a channel. Producer-internal: only the drum and the light gun
// call it, never the polling side.
func (s *Status) set(ch Channel) {
	validCh(ch)
	if s.bits&(1<<ch) == 0 {
		log.ModStatus.DebugZ("channel raised").Stringer("ch", ch).End()
	}
	s.bits |= 1 << ch
}

// CheckName and ClearName are the name-based surface used by the UI and
// diagnostic layers. Unknown names fail, never silently.

func (s *Status) CheckName(name string) (bool, error) {
	ch, err := ChannelByName(name)
	if err != nil {
		return false, err
	}
	return s.Check(ch), nil
}

func (s *Status) ClearName(name string) error {
	ch, err := ChannelByName(name)
	if err != nil {
		return err
	}
	s.Clear(ch)
	return nil
}

// Raw returns the whole register as a bitfield, for snapshots.
func (s *Status) Raw() uint32 {
	return s.bits
}

// SetRaw overwrites the whole register, for snapshot restore.
func (s *Status) SetRaw(bits uint32) {
	s.bits = bits
}
