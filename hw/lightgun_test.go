package hw

import "testing"

func newTestGun() (*LightGun, *Status) {
	status := &Status{}
	return NewLightGun(status, 0), status
}

func TestLightGunSingleShot(t *testing.T) {
	g, s := newTestGun()

	x, y := FromFrac(0.5), FromFrac(-0.25)
	g.Arm(x, y)
	if g.State() != ArmedWaiting {
		t.Fatalf("state = %s, want ArmedWaiting", g.State())
	}

	g.PollDuringDraw(x, y)
	if g.State() != FlashDetected {
		t.Fatalf("state = %s, want FlashDetected", g.State())
	}
	if !s.Check(LIGHT_GUN) {
		t.Fatal("LIGHT_GUN not raised on detection")
	}

	// True exactly once, then false without re-arming.
	if !g.PollStatus() {
		t.Fatal("first PollStatus must return true")
	}
	if g.State() != Disarmed {
		t.Errorf("state after drain = %s, want Disarmed", g.State())
	}
	if s.Check(LIGHT_GUN) {
		t.Error("LIGHT_GUN still set after drain")
	}
	if g.PollStatus() {
		t.Error("second PollStatus must return false")
	}
}

func TestLightGunTolerance(t *testing.T) {
	g, _ := newTestGun()
	tol := Halfword(g.Tolerance())

	target := FromFrac(0.25)
	g.Arm(target, target)

	// Just inside the window.
	g.PollDuringDraw(target+tol, target-tol)
	if g.State() != FlashDetected {
		t.Errorf("state = %s, want FlashDetected within tolerance", g.State())
	}

	g.Arm(target, target)
	// One step outside, on either axis.
	g.PollDuringDraw(target+tol+1, target)
	if g.State() != ArmedWaiting {
		t.Errorf("x beyond tolerance matched (state %s)", g.State())
	}
	g.PollDuringDraw(target, target-tol-1)
	if g.State() != ArmedWaiting {
		t.Errorf("y beyond tolerance matched (state %s)", g.State())
	}
}

func TestLightGunNoOpStates(t *testing.T) {
	g, s := newTestGun()

	// Disarmed: draw passes do nothing.
	g.PollDuringDraw(0, 0)
	if g.State() != Disarmed || s.Check(LIGHT_GUN) {
		t.Error("draw poll while disarmed must be a no-op")
	}

	// FlashDetected is terminal until drained: further matches don't
	// re-trigger.
	g.Arm(0, 0)
	g.PollDuringDraw(0, 0)
	if g.State() != FlashDetected {
		t.Fatal("no detection")
	}
	g.PollDuringDraw(0, 0)
	if g.State() != FlashDetected {
		t.Error("second match changed a terminal state")
	}
}

func TestLightGunDisarmDiscards(t *testing.T) {
	g, s := newTestGun()

	g.Arm(0, 0)
	g.PollDuringDraw(0, 0)
	g.Disarm()

	if g.State() != Disarmed {
		t.Errorf("state = %s, want Disarmed", g.State())
	}
	if s.Check(LIGHT_GUN) {
		t.Error("disarm must withdraw the pending detection signal")
	}
	if g.PollStatus() {
		t.Error("discarded detection must not surface in a poll")
	}
}

func TestLightGunRearmFromDetected(t *testing.T) {
	g, _ := newTestGun()

	g.Arm(0, 0)
	g.PollDuringDraw(0, 0)

	// Arm is valid from FlashDetected and moves the target.
	nx := FromFrac(0.5)
	g.Arm(nx, nx)
	if g.State() != ArmedWaiting {
		t.Fatalf("state = %s, want ArmedWaiting", g.State())
	}
	gx, gy := g.Target()
	if gx != nx || gy != nx {
		t.Errorf("target = (%s, %s), want (%s, %s)", gx, gy, nx, nx)
	}
}
