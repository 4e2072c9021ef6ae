package tui

import (
	"testing"
	"time"
)

func TestHoldTrackerInitialGap(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	start := time.Unix(0, 0)

	if !h.Press(start) {
		t.Fatal("first press should start a hold")
	}
	if h.Press(start.Add(50 * time.Millisecond)) {
		t.Error("repeat should not start a new hold")
	}
	// Repeating switches to the short gap.
	if h.Expired(start.Add(120 * time.Millisecond)) {
		t.Error("expired before repeat gap elapsed")
	}
	if !h.Expired(start.Add(200 * time.Millisecond)) {
		t.Error("expected release after repeat gap")
	}
	if h.Held() {
		t.Error("hold should be cleared after expiry")
	}
	if h.Expired(start.Add(time.Second)) {
		t.Error("expiry should be reported once")
	}
}

func TestHoldTrackerSinglePress(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	start := time.Unix(0, 0)
	h.Press(start)

	tests := []struct {
		after time.Duration
		want  bool
	}{
		{100 * time.Millisecond, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := h.Expired(start.Add(tt.after)); got != tt.want {
			t.Errorf("Expired(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(DefaultHoldInitialGap, DefaultHoldRepeatGap)
	now := time.Unix(0, 0)
	h.Press(now)
	h.Reset()
	if h.Held() {
		t.Error("Reset should drop the hold")
	}
	if h.Expired(now.Add(time.Hour)) {
		t.Error("Reset should not report a release")
	}
	if !h.Press(now) {
		t.Error("press after Reset should start a new hold")
	}
}

func TestDefaultKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	for i, col := range km.FullHelp() {
		if len(col) == 0 {
			t.Errorf("full help column %d is empty", i)
		}
	}
}
