package neko

import (
	"math"

	"github.com/vovakirdan/neko-runner/internal/config"
)

// Combo is a decaying destruction streak.
type Combo struct {
	Count int
	Timer int // Ticks left before the streak resets
}

// Hit extends the streak and restarts its window.
func (c *Combo) Hit(window int) {
	c.Count++
	c.Timer = window
}

// Decay runs once per simulated tick.
func (c *Combo) Decay() {
	if c.Timer <= 0 {
		return
	}
	c.Timer--
	if c.Timer == 0 {
		c.Count = 0
	}
}

// Reset drops the streak immediately.
func (c *Combo) Reset() {
	c.Count = 0
	c.Timer = 0
}

// ComboWindow returns the decay window including perk bonuses.
func ComboWindow(cfg config.ComboConfig, ps *PerkState) int {
	return cfg.Window + ps.ComboWindowBonus
}

// Multiplier returns the score multiplier for a streak of count.
// Non-decreasing in count and capped at cfg.MaxMultiplier.
func Multiplier(count int, cfg config.ComboConfig, perBonus float64) float64 {
	if count <= 0 {
		return 1
	}
	steps := 0
	if cfg.StepEvery > 0 {
		steps = count / cfg.StepEvery
	}
	m := 1 + cfg.StepBonus*float64(steps) + perBonus*float64(count)
	return math.Min(cfg.MaxMultiplier, m)
}
