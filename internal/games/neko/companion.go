package neko

import "github.com/vovakirdan/neko-runner/internal/config"

// Companion is the kitten: it grows from gameplay events and, once grown,
// is consumed to cancel a game over.
type Companion struct {
	Active bool
	X, Y   float64
	Growth int
	Grown  bool
}

// Enable activates a fresh companion at (x, y). No-op if already active.
func (c *Companion) Enable(x, y float64) {
	if c.Active {
		return
	}
	*c = Companion{Active: true, X: x, Y: y}
}

// Feed adds one growth point up to limit. Returns false when nothing changed.
func (c *Companion) Feed(limit int) bool {
	if !c.Active || c.Grown {
		return false
	}
	c.Growth++
	if c.Growth >= limit {
		c.Growth = limit
		c.Grown = true
	}
	return true
}

// OnLevelUp reactivates a consumed companion or feeds an active one.
func (c *Companion) OnLevelUp(enabled bool, limit int, x, y float64) {
	if !enabled {
		return
	}
	if !c.Active {
		c.Enable(x, y)
		return
	}
	c.Feed(limit)
}

// TryRevive consumes a grown companion. Returns true if a revive happened.
func (c *Companion) TryRevive() bool {
	if !c.Active || !c.Grown {
		return false
	}
	c.Active = false
	c.Growth = 0
	c.Grown = false
	return true
}

// Follow eases the companion toward its spot behind the player.
func (c *Companion) Follow(p *Player, cfg config.CompanionConfig) {
	if !c.Active {
		return
	}
	tx := p.X - cfg.FollowOffset
	ty := p.Y + p.H/2
	c.X += (tx - c.X) * cfg.FollowRate
	c.Y += (ty - c.Y) * cfg.FollowRate
}
