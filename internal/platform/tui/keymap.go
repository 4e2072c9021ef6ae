package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Jump       key.Binding
	Hop        key.Binding
	Confirm    key.Binding
	Perk1      key.Binding
	Perk2      key.Binding
	Perk3      key.Binding
	Reroll     key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Hop, k.Perk1, k.Reroll, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Hop, k.Confirm},
		{k.Perk1, k.Perk2, k.Perk3, k.Reroll},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hold to charge"),
		),
		Hop: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "hop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Perk1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "pick perk"),
		),
		Perk2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "pick perk 2"),
		),
		Perk3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "pick perk 3"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reroll"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Key repeat timing used to detect a released key. Terminals report
// presses only; a held key auto-repeats after an initial delay.
const (
	DefaultHoldInitialGap = 550 * time.Millisecond
	DefaultHoldRepeatGap  = 120 * time.Millisecond
)

// HoldTracker turns a stream of key presses and repeats into a held
// state with a synthesized release.
type HoldTracker struct {
	initialGap time.Duration
	repeatGap  time.Duration

	held      bool
	repeating bool
	last      time.Time
}

// NewHoldTracker creates a tracker with the given repeat gaps.
func NewHoldTracker(initialGap, repeatGap time.Duration) *HoldTracker {
	return &HoldTracker{initialGap: initialGap, repeatGap: repeatGap}
}

// Press records a key event. Returns true when it starts a new hold.
func (h *HoldTracker) Press(now time.Time) bool {
	fresh := !h.held
	if h.held {
		h.repeating = true
	}
	h.held = true
	h.last = now
	return fresh
}

// Expired reports, once, that the key stopped repeating.
func (h *HoldTracker) Expired(now time.Time) bool {
	if !h.held {
		return false
	}
	gap := h.initialGap
	if h.repeating {
		gap = h.repeatGap
	}
	if now.Sub(h.last) < gap {
		return false
	}
	h.Reset()
	return true
}

// Held reports whether the key is considered down.
func (h *HoldTracker) Held() bool {
	return h.held
}

// Reset drops any hold without reporting a release.
func (h *HoldTracker) Reset() {
	h.held = false
	h.repeating = false
}
