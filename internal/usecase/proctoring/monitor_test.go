package proctoring

import (
	"testing"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

func TestOnFaceCheckResult_FacePresentDoesNotCount(t *testing.T) {
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 3, MaxTabViolations: 3}, nil)

	if got := m.OnFaceCheckResult(1); got != 0 {
		t.Errorf("attention count = %d, want 0", got)
	}
	if got := m.OnFaceCheckResult(2); got != 0 {
		t.Errorf("attention count = %d, want 0", got)
	}
	if state := m.State(); state.WarningMessage != "" {
		t.Errorf("unexpected warning: %q", state.WarningMessage)
	}
}

func TestOnFaceCheckResult_FiresOnceAtThreshold(t *testing.T) {
	var fired []string
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 3, MaxTabViolations: 5}, func(reason string) {
		fired = append(fired, reason)
	})

	m.OnFaceCheckResult(0)
	m.OnFaceCheckResult(0)
	if len(fired) != 0 {
		t.Fatalf("callback fired before threshold: %v", fired)
	}

	// Threshold check is >=: the 3rd occurrence trips a max of 3.
	m.OnFaceCheckResult(0)
	if len(fired) != 1 || fired[0] != entities.ReasonAttentionViolation {
		t.Fatalf("fired = %v, want exactly [%s]", fired, entities.ReasonAttentionViolation)
	}

	// Counting continues past the threshold but the callback stays quiet.
	m.OnFaceCheckResult(0)
	m.OnFaceCheckResult(0)
	if len(fired) != 1 {
		t.Errorf("callback fired %d times, want 1", len(fired))
	}
	if state := m.State(); state.AttentionCount != 5 || state.NoFaceCount != 5 {
		t.Errorf("state = %+v, want 5 attention / 5 no-face", state)
	}
}

func TestTabSwitch_BlurAndHiddenBothCount(t *testing.T) {
	var fired []string
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 5, MaxTabViolations: 2}, func(reason string) {
		fired = append(fired, reason)
	})

	// One real tab switch delivers both a blur and a visibility change;
	// the monitor counts both.
	m.OnBlur()
	m.OnVisibilityChange(true)

	if state := m.State(); state.TabSwitchCount != 2 {
		t.Fatalf("tab switch count = %d, want 2", state.TabSwitchCount)
	}
	if len(fired) != 1 || fired[0] != entities.ReasonTabSwitchViolation {
		t.Fatalf("fired = %v, want exactly [%s]", fired, entities.ReasonTabSwitchViolation)
	}
}

func TestOnVisibilityChange_VisibleDoesNotCount(t *testing.T) {
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 5, MaxTabViolations: 5}, nil)
	m.OnVisibilityChange(true)
	if got := m.OnVisibilityChange(false); got != 1 {
		t.Errorf("tab switch count = %d, want 1 (return to visible is free)", got)
	}
}

func TestMonitor_ClassesAreIndependent(t *testing.T) {
	var fired []string
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 2, MaxTabViolations: 2}, func(reason string) {
		fired = append(fired, reason)
	})

	m.OnFaceCheckResult(0)
	m.OnFaceCheckResult(0)
	m.OnBlur()
	m.OnBlur()

	if len(fired) != 2 {
		t.Fatalf("fired = %v, want one callback per class", fired)
	}
	if fired[0] != entities.ReasonAttentionViolation || fired[1] != entities.ReasonTabSwitchViolation {
		t.Errorf("fired = %v, wrong reasons", fired)
	}
}

func TestMonitor_ResetRearmsCallback(t *testing.T) {
	firedCount := 0
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 1, MaxTabViolations: 1}, func(string) {
		firedCount++
	})

	m.OnFaceCheckResult(0)
	m.OnBlur()
	if firedCount != 2 {
		t.Fatalf("fired %d times, want 2", firedCount)
	}

	m.Reset()
	if state := m.State(); state != (ViolationState{}) {
		t.Fatalf("state after reset = %+v, want zero value", state)
	}

	m.OnFaceCheckResult(0)
	m.OnBlur()
	if firedCount != 4 {
		t.Errorf("fired %d times after reset, want 4", firedCount)
	}
}

func TestMonitor_NilCallback(t *testing.T) {
	m := NewViolationMonitor(MonitorConfig{MaxAttentionViolations: 1, MaxTabViolations: 1}, nil)
	m.OnFaceCheckResult(0)
	m.OnBlur()
	if state := m.State(); state.AttentionCount != 1 || state.TabSwitchCount != 1 {
		t.Errorf("state = %+v, want counters at 1", state)
	}
}
