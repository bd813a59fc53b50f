package hw

import (
	"errors"
	"testing"
)

func TestStatusSetCheckClear(t *testing.T) {
	var s Status

	for ch := Channel(0); ch < numChannels; ch++ {
		if s.Check(ch) {
			t.Fatalf("channel %s set on a fresh register", ch)
		}
	}

	s.set(OD_LRI)
	// A set bit persists across any number of peeks.
	for range 10 {
		if !s.Check(OD_LRI) {
			t.Fatal("OD_LRI dropped without a Clear")
		}
	}
	if s.Check(OD_GFI) || s.Check(CD_LRI) {
		t.Error("unrelated channels raised")
	}

	s.Clear(OD_LRI)
	if s.Check(OD_LRI) {
		t.Error("OD_LRI still set after Clear")
	}
	// Clearing an already-clear channel is a no-op, not an error.
	s.Clear(OD_LRI)
	if s.Check(OD_LRI) {
		t.Error("OD_LRI set after double Clear")
	}
}

func TestStatusSetIdempotent(t *testing.T) {
	var s Status
	s.set(LIGHT_GUN)
	s.set(LIGHT_GUN)
	if !s.Check(LIGHT_GUN) {
		t.Fatal("LIGHT_GUN not set")
	}
	s.Clear(LIGHT_GUN)
	if s.Check(LIGHT_GUN) {
		t.Error("one Clear must drain however many sets")
	}
}

func TestChannelByName(t *testing.T) {
	for ch := Channel(0); ch < numChannels; ch++ {
		got, err := ChannelByName(ch.String())
		if err != nil {
			t.Fatalf("ChannelByName(%s): %v", ch, err)
		}
		if got != ch {
			t.Errorf("ChannelByName(%s) = %s", ch, got)
		}
	}

	_, err := ChannelByName("OD_FOO")
	if !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("ChannelByName(OD_FOO) error = %v, want ErrUnknownChannel", err)
	}

	var s Status
	if _, err := s.CheckName("nonsense"); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("CheckName error = %v, want ErrUnknownChannel", err)
	}
	if err := s.ClearName("nonsense"); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("ClearName error = %v, want ErrUnknownChannel", err)
	}
}

func TestStatusPanicsOnInvalidChannel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Check(numChannels) should panic")
		}
	}()
	var s Status
	s.Check(numChannels)
}
