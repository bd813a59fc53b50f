package hw

import "anfsq7/hw/snapshot"

// Snapshot/Restore pairs below are exact field-for-field copies, no
// normalization: both zero representations, a latched fault, an undrained
// channel bit all survive the round trip.

func (c *CPU) Snapshot() snapshot.CPU {
	s := snapshot.CPU{
		ACC:    [2]uint16{uint16(c.ACC.L), uint16(c.ACC.R)},
		PC:     c.PC,
		Fault:  c.Fault,
		Halted: c.halted,
		Cycles: c.Cycles,
		Core:   make([]uint16, CoreSize),
	}
	for i, h := range c.Core {
		s.Core[i] = uint16(h)
	}
	return s
}

func (c *CPU) Restore(s snapshot.CPU) {
	c.ACC = Word{L: Halfword(s.ACC[0]), R: Halfword(s.ACC[1])}
	c.PC = s.PC % CoreSize
	c.Fault = s.Fault
	c.halted = s.Halted
	c.Cycles = s.Cycles
	c.Core = [CoreSize]Halfword{}
	for i, v := range s.Core {
		if i >= CoreSize {
			break
		}
		c.Core[i] = Halfword(v)
	}
}

func (d *Drum) Snapshot() snapshot.Drum {
	return snapshot.Drum{
		LRI: wordsOut(d.fields[LRI]),
		GFI: wordsOut(d.fields[GFI]),
		XTL: wordsOut(d.fields[XTL]),
		SDC: wordsOut(d.fields[SDC]),
	}
}

// Restore adopts the snapshot's field lengths wholesale; bounds are fixed
// at construction and a snapshot is a construction.
func (d *Drum) Restore(s snapshot.Drum) {
	d.fields[LRI] = wordsIn(s.LRI)
	d.fields[GFI] = wordsIn(s.GFI)
	d.fields[XTL] = wordsIn(s.XTL)
	d.fields[SDC] = wordsIn(s.SDC)
}

func wordsOut(ws []Word) [][2]uint16 {
	out := make([][2]uint16, len(ws))
	for i, w := range ws {
		out[i] = [2]uint16{uint16(w.L), uint16(w.R)}
	}
	return out
}

func wordsIn(s [][2]uint16) []Word {
	ws := make([]Word, len(s))
	for i, p := range s {
		ws[i] = Word{L: Halfword(p[0]), R: Halfword(p[1])}
	}
	return ws
}

func (g *LightGun) Snapshot() snapshot.LightGun {
	return snapshot.LightGun{
		State:   uint8(g.state),
		TargetX: uint16(g.targetX),
		TargetY: uint16(g.targetY),
	}
}

func (g *LightGun) Restore(s snapshot.LightGun) {
	g.setState(GunState(s.State))
	g.targetX = Halfword(s.TargetX)
	g.targetY = Halfword(s.TargetY)
}
