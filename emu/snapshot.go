package emu

import (
	"fmt"
	"io"

	"anfsq7/hw/snapshot"
)

// Snapshot captures the whole machine state as an exact field-for-field
// copy: drum fields, status register, CPU registers and core, light gun.
func (s *Sim) Snapshot() *snapshot.Core {
	return &snapshot.Core{
		Version: snapshot.Version,
		CPU:     s.CPU.Snapshot(),
		Drum:    s.Drum.Snapshot(),
		Status:  s.Status.Raw(),
		Gun:     s.Gun.Snapshot(),
	}
}

// Restore overwrites the machine state with a snapshot.
func (s *Sim) Restore(c *snapshot.Core) error {
	if c.Version != snapshot.Version {
		return fmt.Errorf("unsupported snapshot version %d", c.Version)
	}
	s.CPU.Restore(c.CPU)
	s.Drum.Restore(c.Drum)
	s.Status.SetRaw(c.Status)
	s.Gun.Restore(c.Gun)
	return nil
}

// SaveSnapshot serializes the current state to w.
func (s *Sim) SaveSnapshot(w io.Writer) error {
	return snapshot.Encode(w, s.Snapshot())
}

// LoadSnapshot restores state serialized by SaveSnapshot.
func (s *Sim) LoadSnapshot(r io.Reader) error {
	c, err := snapshot.Decode(r)
	if err != nil {
		return err
	}
	return s.Restore(c)
}
