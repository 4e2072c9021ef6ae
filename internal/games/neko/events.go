package neko

import "github.com/vovakirdan/neko-runner/internal/core"

// EventKind identifies something notable that happened during a tick or
// an input command.
type EventKind int

const (
	EventRunStart EventKind = iota
	EventHit
	EventShieldBlock
	EventExplosion
	EventMissile
	EventHeart
	EventPowerUp
	EventLevelUp
	EventPerkApplied
	EventReroll
	EventRevive
	EventGameOver
	EventNewBest
)

var eventNames = map[EventKind]string{
	EventRunStart:    "run_start",
	EventHit:         "hit",
	EventShieldBlock: "shield_block",
	EventExplosion:   "explosion",
	EventMissile:     "missile",
	EventHeart:       "heart",
	EventPowerUp:     "power_up",
	EventLevelUp:     "level_up",
	EventPerkApplied: "perk_applied",
	EventReroll:      "reroll",
	EventRevive:      "revive",
	EventGameOver:    "game_over",
	EventNewBest:     "new_best",
}

// String returns the event's log name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single notification. Value carries a score, level or life
// count depending on Kind; Perk is set for perk events.
type Event struct {
	Kind  EventKind
	Value int
	Perk  PerkID
}

// Result is returned by every kernel entry point.
type Result struct {
	State  core.GameState
	Events []Event
}

// Has reports whether an event of kind k occurred.
func (r Result) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
