package platform

import (
	"errors"
	"testing"
)

func TestAcquireSingleInstance(t *testing.T) {
	guard, err := AcquireSingleInstance("FocusBellInstanceTest")
	if err != nil {
		t.Fatalf("AcquireSingleInstance() error: %v", err)
	}
	defer guard.Release()

	if guard.Address() == "" {
		t.Error("Address() is empty for a held guard")
	}

	if _, err := AcquireSingleInstance("FocusBellInstanceTest"); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second acquire error = %v, want ErrAlreadyRunning", err)
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	guard, err := AcquireSingleInstance("FocusBellReacquireTest")
	if err != nil {
		t.Fatalf("AcquireSingleInstance() error: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}

	again, err := AcquireSingleInstance("FocusBellReacquireTest")
	if err != nil {
		t.Fatalf("reacquire after release error: %v", err)
	}
	defer again.Release()
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("FocusBell")
	second := portFromName("FocusBell")
	if first != second {
		t.Errorf("portFromName not deterministic: %d vs %d", first, second)
	}
	if first < 20000 || first > 39999 {
		t.Errorf("port %d outside expected range", first)
	}
}

func TestNilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Errorf("Release() on nil guard error: %v", err)
	}
	if guard.Address() != "" {
		t.Error("Address() on nil guard is not empty")
	}
}
