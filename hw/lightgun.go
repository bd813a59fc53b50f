package hw

import "anfsq7/emu/log"

// GunState is the light gun detection latch state.
type GunState uint8

//go:generate go tool stringer -type=GunState

const (
	Disarmed GunState = iota
	ArmedWaiting
	FlashDetected
)

// DefaultGunTolerance is the per-axis match window, in 1/32768 steps of the
// display fraction (1/256 of full scale per side).
const DefaultGunTolerance = 128

// LightGun models the photomultiplier flip-flop behind the operator's gun.
// The renderer calls PollDuringDraw once per symbol it paints; when the
// drawn coordinate lands within the armed window the latch flips to
// FlashDetected and raises LIGHT_GUN. The latch is single-shot: draining it
// through PollStatus returns the gun to Disarmed, it does not re-arm.
type LightGun struct {
	status *Status

	state            GunState
	targetX, targetY Halfword
	tol              int
}

// NewLightGun builds a disarmed gun. tol <= 0 selects the default window.
func NewLightGun(status *Status, tol int) *LightGun {
	if tol <= 0 {
		tol = DefaultGunTolerance
	}
	return &LightGun{status: status, tol: tol}
}

// Arm points the gun at a display coordinate. Valid from Disarmed or
// FlashDetected; re-arming while already waiting just moves the target.
func (g *LightGun) Arm(x, y Halfword) {
	g.targetX, g.targetY = x, y
	g.state = ArmedWaiting
	log.ModGun.DebugZ("armed").Frac("x", uint16(x)).Frac("y", uint16(y)).End()
}

// Disarm drops the gun back to Disarmed from any state. A pending
// detection is discarded whole: the flip-flop output falls with the arm
// signal, so a raised LIGHT_GUN bit is withdrawn before the CPU can poll
// it.
func (g *LightGun) Disarm() {
	if g.state == FlashDetected {
		g.status.Clear(LIGHT_GUN)
	}
	g.state = Disarmed
}

// PollDuringDraw is the per-symbol hook invoked by the external rendering
// driver during its sequential scan pass. In ArmedWaiting, a coordinate
// within the tolerance window flips the latch and raises LIGHT_GUN. In any
// other state it is a no-op.
func (g *LightGun) PollDuringDraw(x, y Halfword) {
	if g.state != ArmedWaiting {
		return
	}
	if !g.matches(x, y) {
		return
	}
	g.state = FlashDetected
	g.status.set(LIGHT_GUN)
	log.ModGun.DebugZ("flash detected").Frac("x", uint16(x)).Frac("y", uint16(y)).End()
}

func (g *LightGun) matches(x, y Halfword) bool {
	dx := x.mag() - g.targetX.mag()
	dy := y.mag() - g.targetY.mag()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= g.tol && dy <= g.tol
}

// PollStatus drains the latch. Edge-triggered: true exactly once per
// detection, clearing LIGHT_GUN and resetting the gun to Disarmed, the way
// reading the physical flip-flop reset it. A second call without a new
// detection returns false.
func (g *LightGun) PollStatus() bool {
	if !g.status.Check(LIGHT_GUN) {
		return false
	}
	g.status.Clear(LIGHT_GUN)
	g.state = Disarmed
	return true
}

// State returns the current latch state.
func (g *LightGun) State() GunState {
	return g.state
}

// Target returns the armed coordinate.
func (g *LightGun) Target() (x, y Halfword) {
	return g.targetX, g.targetY
}

// Tolerance returns the per-axis match window in 1/32768 steps.
func (g *LightGun) Tolerance() int {
	return g.tol
}

// setState forces the latch, for snapshot restore.
func (g *LightGun) setState(s GunState) {
	g.state = s
}
