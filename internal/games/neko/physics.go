package neko

import (
	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
)

// Player is the runner's body and input-driven jump state.
type Player struct {
	X, Y         float64
	W, H         float64
	VY           float64
	OnGround     bool
	Charging     bool
	ChargeFrames int
	AirJumps     int // Remaining air jumps before landing
	HoverFrames  int // Remaining hover budget before landing
	Pressing     bool
	Hovering     bool // Hover was applied during the last step
}

func newPlayer(cfg config.NekoConfig) Player {
	return Player{
		X:        cfg.Player.X,
		Y:        cfg.GroundY(),
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		OnGround: true,
	}
}

// Rect returns the collision box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// ChargeLimit returns the frames needed for a full charge.
func ChargeLimit(cfg config.JumpConfig, ps *PerkState) int {
	limit := cfg.ChargeFrames - cfg.ChargeFramesPerRank*ps.TimeRank
	if limit < cfg.MinChargeFrames {
		limit = cfg.MinChargeFrames
	}
	return limit
}

// MaxJumpImpulse returns the full-charge impulse including perk boosts.
func MaxJumpImpulse(cfg config.JumpConfig, ps *PerkState) float64 {
	return cfg.MaxImpulse + cfg.MaxImpulsePerRank*float64(ps.ChargeRank)
}

// AirJumpImpulse returns the fixed air jump impulse including perk boosts.
func AirJumpImpulse(cfg config.JumpConfig, ps *PerkState) float64 {
	return cfg.AirImpulse + cfg.AirImpulsePerRank*float64(ps.ChargeRank)
}

// ChargeRatio returns the current charge in [0, 1].
func (p *Player) ChargeRatio(limit int) float64 {
	if !p.Charging || limit <= 0 {
		return 0
	}
	return core.ClampF(float64(p.ChargeFrames)/float64(limit), 0, 1)
}

// press starts a charge on the ground or spends an air jump.
// Returns true if an air jump fired.
func (p *Player) press(cfg config.JumpConfig, ps *PerkState) bool {
	p.Pressing = true
	if p.OnGround {
		p.Charging = true
		p.ChargeFrames = 0
		return false
	}
	if ps.MaxAirJumps > 0 && p.AirJumps > 0 {
		p.AirJumps--
		p.VY = AirJumpImpulse(cfg, ps)
		p.Hovering = false
		return true
	}
	return false
}

// release fires a charged jump. Returns true if the player left the ground.
func (p *Player) release(cfg config.JumpConfig, ps *PerkState) bool {
	p.Pressing = false
	if !p.Charging {
		return false
	}
	ratio := p.ChargeRatio(ChargeLimit(cfg, ps))
	p.Charging = false
	p.ChargeFrames = 0
	if !p.OnGround {
		return false
	}
	p.VY = core.Lerp(cfg.MinImpulse, MaxJumpImpulse(cfg, ps), ratio)
	p.OnGround = false
	return true
}

// cancelInput drops any held input, used when the simulation suspends.
func (p *Player) cancelInput() {
	p.Pressing = false
	p.Charging = false
	p.ChargeFrames = 0
	p.Hovering = false
}

// step advances the player by one tick.
func (p *Player) step(cfg config.NekoConfig, ps *PerkState) {
	if p.OnGround {
		p.Hovering = false
		if p.Charging {
			if limit := ChargeLimit(cfg.Jump, ps); p.ChargeFrames < limit {
				p.ChargeFrames++
			}
		}
		return
	}

	gravity := cfg.Physics.Gravity * ps.GravityScale
	maxFall := cfg.Physics.MaxFallSpeed
	p.Hovering = ps.HoverRank > 0 && p.Pressing && p.VY > 0 && p.HoverFrames > 0
	if p.Hovering {
		gravity *= cfg.Physics.HoverGravity
		maxFall = cfg.Physics.HoverMaxFall
		p.HoverFrames--
	}

	p.VY += gravity
	if p.VY > maxFall {
		p.VY = maxFall
	}
	p.Y += p.VY

	ground := cfg.GroundY()
	if p.Y >= ground {
		p.land(ground, cfg, ps)
	}
}

func (p *Player) land(ground float64, cfg config.NekoConfig, ps *PerkState) {
	p.Y = ground
	p.VY = 0
	p.OnGround = true
	p.Hovering = false
	p.AirJumps = ps.MaxAirJumps
	p.HoverFrames = cfg.Physics.HoverFramesPerRank * ps.HoverRank
}
