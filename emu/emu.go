package emu

import (
	"errors"
	"fmt"
	"sync/atomic"

	"anfsq7/emu/log"
	"anfsq7/hw"
	"anfsq7/tape"
)

// Sim owns the whole core as one explicitly wired aggregate: CPU, drum,
// status register and light gun, no hidden globals. The core is
// single-threaded by contract; all effects of a tick are visible to the
// next caller within that tick. A driver mixing goroutines (a UI thread
// plus a simulation thread, say) must wrap each per-tick mutation in its
// own critical section: Sim adds no internal locking, exactly as the
// hardware had none.
type Sim struct {
	CPU    *hw.CPU
	Drum   *hw.Drum
	Status *hw.Status
	Gun    *hw.LightGun

	quit atomic.Bool
}

// PowerUp wires the core together from the configuration.
func PowerUp(cfg Config) *Sim {
	status := &hw.Status{}
	drum := hw.NewDrum(status, cfg.Drum.FieldSizes())
	cpu := hw.NewCPU(drum, status)
	gun := hw.NewLightGun(status, cfg.Gun.Tolerance)

	if cfg.TraceOut != nil {
		cpu.AttachTracer(cfg.TraceOut)
	}

	log.ModEmu.InfoZ("power up").
		Int("lri", drum.Size(hw.LRI)).
		Int("gfi", drum.Size(hw.GFI)).
		Int("xtl", drum.Size(hw.XTL)).
		Int("sdc", drum.Size(hw.SDC)).
		Int("gun_tol", gun.Tolerance()).
		End()

	return &Sim{CPU: cpu, Drum: drum, Status: status, Gun: gun}
}

// LoadDeck copies a program deck into core memory and resets the CPU.
func (s *Sim) LoadDeck(deck *tape.Deck) error {
	for _, e := range deck.Entries {
		if int(e.Addr) >= hw.CoreSize {
			return fmt.Errorf("deck word at %04x outside core (size %04x)", e.Addr, hw.CoreSize)
		}
		s.CPU.Core[e.Addr] = hw.Halfword(e.Word)
	}
	s.CPU.Reset()
	log.ModEmu.InfoZ("deck loaded").Int("words", len(deck.Entries)).End()
	return nil
}

// Step runs one CPU cycle and returns the observable trace record.
func (s *Sim) Step() (hw.TraceRecord, error) {
	return s.CPU.Step()
}

// Stop makes a RunToHalt in progress return after its current tick. Safe to
// call from another goroutine; it is the one crossing point, everything
// else stays single-threaded.
func (s *Sim) Stop() {
	s.quit.Store(true)
}

// RunToHalt steps the CPU until it halts, faults, runs maxTicks cycles
// (0 means unbounded) or Stop is called. Address faults are non-fatal:
// they are logged and the run continues, the instruction having had no
// effect. An instruction fault ends the run with the error.
func (s *Sim) RunToHalt(maxTicks int) (hw.TraceRecord, error) {
	var rec hw.TraceRecord
	var err error
	for ticks := 0; !s.CPU.Halted(); ticks++ {
		if maxTicks > 0 && ticks >= maxTicks {
			return rec, fmt.Errorf("no halt after %d ticks", maxTicks)
		}
		if s.quit.Load() {
			return rec, nil
		}

		rec, err = s.CPU.Step()
		var af *hw.AddressFault
		if errors.As(err, &af) {
			log.ModEmu.WarnZ("address fault").
				Stringer("field", af.Field).
				Int("addr", af.Addr).
				Hex16("pc", rec.PC).
				End()
			continue
		}
		if err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// Device/UI surface. External producers inject inbound data, the display
// layer inspects fields and channels read-only; clearing stays reserved to
// the CPU's own poll loop.

func (s *Sim) WriteField(field hw.DrumField, addr int, w hw.Word, dir hw.Direction) error {
	return s.Drum.WriteField(field, addr, w, dir)
}

func (s *Sim) ReadField(field hw.DrumField, addr int) (hw.Word, error) {
	return s.Drum.ReadField(field, addr)
}

// CheckChannel is the diagnostic, name-based channel peek for the UI layer.
func (s *Sim) CheckChannel(name string) (bool, error) {
	return s.Status.CheckName(name)
}

// ClearChannel acknowledges a channel by name. Reserved to the layer
// standing in for the CPU poll loop.
func (s *Sim) ClearChannel(name string) error {
	return s.Status.ClearName(name)
}

// Light gun operator surface.

func (s *Sim) Arm(x, y hw.Halfword) { s.Gun.Arm(x, y) }
func (s *Sim) Disarm()              { s.Gun.Disarm() }
func (s *Sim) PollStatus() bool     { return s.Gun.PollStatus() }

// PollDuringDraw is called by the external rendering driver once per symbol
// it paints during a scan pass.
func (s *Sim) PollDuringDraw(x, y hw.Halfword) { s.Gun.PollDuringDraw(x, y) }
