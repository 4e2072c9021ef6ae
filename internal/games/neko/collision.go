package neko

import (
	"math"

	"github.com/vovakirdan/neko-runner/internal/core"
)

// resolve runs collision resolution for one tick: obstacles, hearts,
// power-ups, then missiles. It stops as soon as a resolution leaves the
// Playing phase or wipes the field.
func (g *Game) resolve() {
	if g.resolveObstacles() {
		return
	}
	g.resolveHearts()
	g.resolvePowerUps()
	g.fireMissiles()
}

// resolveObstacles returns true when a hit ended the run or revived the
// player, since both invalidate the rest of this tick's checks.
func (g *Game) resolveObstacles() bool {
	pr := g.player.Rect()
	for i := range g.entities.Obstacles {
		o := &g.entities.Obstacles[i]
		if o.Hit || !pr.Intersects(o.Rect()) {
			continue
		}
		if g.invincible > 0 {
			g.explode(i, true)
			continue
		}
		o.Hit = true
		if g.damage() {
			return true
		}
	}
	return false
}

// damage applies one non-invincible hit. Returns true if the field was
// wiped or the run ended.
func (g *Game) damage() bool {
	g.combo.Reset()

	if g.shields > 0 {
		g.shields--
		g.flash = g.cfg.Combat.ShieldFlashFrames
		g.emit(EventShieldBlock, g.shields)
		return false
	}

	g.lives--
	g.flash = g.cfg.Combat.FlashFrames
	g.emit(EventHit, g.lives)
	if g.lives > 0 {
		return false
	}

	if g.companion.TryRevive() {
		g.revive()
		return true
	}
	g.lives = 0
	g.endRun()
	return true
}

// revive restores half the life cap, rounded up, and clears the field.
func (g *Game) revive() {
	g.lives = (g.perks.MaxLives + 1) / 2
	if g.invincible < g.cfg.Companion.ReviveInvincibleFrames {
		g.invincible = g.cfg.Companion.ReviveInvincibleFrames
	}
	g.clearField()
	cx, cy := g.player.Rect().Center()
	g.entities.Burst(g.rng, cx, cy, g.cfg.Combat.ParticleCount, g.cfg.Combat.ParticleLife, core.ColorPink)
	g.emit(EventRevive, g.lives)
}

// explode destroys obstacle i: combo, score, XP and particles. With chain
// set and a chain-blast rank, nearby obstacles explode too, without
// chaining further.
func (g *Game) explode(i int, chain bool) {
	o := &g.entities.Obstacles[i]
	o.Hit = true
	cx, cy := o.Rect().Center()

	g.combo.Hit(ComboWindow(g.cfg.Combo, &g.perks))
	mult := Multiplier(g.combo.Count, g.cfg.Combo, g.perks.ComboScoreBonus)
	points := int(math.Round(float64(g.cfg.Combat.ExplosionScore+g.perks.ExplosionBonus) * mult))
	g.score += points
	g.prog.Gain(ObstacleXP(g.cfg.Progression, g.combo.Count))
	g.entities.Burst(g.rng, cx, cy, g.cfg.Combat.ParticleCount, g.cfg.Combat.ParticleLife, core.ColorOrange)
	g.emit(EventExplosion, points)

	if !chain || g.perks.ChainBlastRank == 0 {
		return
	}
	radius := g.ChainRadius()
	for j := range g.entities.Obstacles {
		other := &g.entities.Obstacles[j]
		if j == i || other.Hit {
			continue
		}
		ox, oy := other.Rect().Center()
		if core.Dist(cx, cy, ox, oy) <= radius {
			g.explode(j, false)
		}
	}
}

// ChainRadius returns the chain-blast reach for the current perks.
func (g *Game) ChainRadius() float64 {
	c := g.cfg.Combat
	return c.ChainRadius +
		c.ChainRadiusPerRank*float64(g.perks.ChainBlastRank-1) +
		c.ChainRadiusPerPower*float64(g.perks.ExplosionPower)
}

func (g *Game) resolveHearts() {
	pr := g.player.Rect()
	for i := range g.entities.Hearts {
		h := &g.entities.Hearts[i]
		if h.Taken || !pr.Intersects(h.Rect()) {
			continue
		}
		h.Taken = true
		if g.lives < g.perks.MaxLives {
			g.lives++
		} else {
			g.companion.Feed(g.cfg.Companion.GrowthCap)
		}
		g.prog.Gain(g.cfg.Progression.HeartXP)
		g.emit(EventHeart, g.lives)
	}
}

func (g *Game) resolvePowerUps() {
	pr := g.player.Rect()
	for i := range g.entities.PowerUps {
		p := &g.entities.PowerUps[i]
		if p.Taken || !pr.Intersects(p.Rect()) {
			continue
		}
		p.Taken = true
		c := g.cfg.Combat
		g.invincible = core.Min(g.invincible+c.InvincibleFrames+g.perks.InvincibleBonus, c.MaxInvincibleFrames+g.perks.InvincibleBonus)
		g.companion.Feed(g.cfg.Companion.GrowthCap)
		g.prog.Gain(g.cfg.Progression.PowerUpXP)
		cx, cy := p.Rect().Center()
		g.entities.Burst(g.rng, cx, cy, c.ParticleCount, c.ParticleLife, core.ColorBrightYellow)
		g.emit(EventPowerUp, g.invincible)
	}
}

// fireMissiles counts down the missile cooldown and destroys the nearest
// live obstacle ahead of the player when it expires.
func (g *Game) fireMissiles() {
	if g.perks.MissileRank == 0 {
		return
	}
	if g.missileTimer > 0 {
		g.missileTimer--
		if g.missileTimer > 0 {
			return
		}
	}

	target := g.missileTarget()
	if target < 0 {
		return
	}
	g.explode(target, true)
	g.missileTimer = g.perks.MissileCooldown
	g.emit(EventMissile, target)
}

// missileTarget returns the index of the nearest unconsumed on-screen
// obstacle ahead of the player, or -1.
func (g *Game) missileTarget() int {
	best := -1
	bestX := math.Inf(1)
	for i, o := range g.entities.Obstacles {
		if o.Hit || o.X <= g.player.X || o.X >= g.cfg.Field.Width {
			continue
		}
		if o.X < bestX {
			best, bestX = i, o.X
		}
	}
	return best
}
