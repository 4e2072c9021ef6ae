// Package telemetry runs headless Neko Runner sessions under a scripted
// autopilot and reports per-run records and aggregate statistics. It is
// used to check balance changes without a terminal.
package telemetry

import (
	"github.com/vovakirdan/neko-runner/internal/core"
	"github.com/vovakirdan/neko-runner/internal/games/neko"
)

// Pilot decides the input for the next frame from a snapshot.
type Pilot interface {
	Decide(s *neko.Snapshot) []core.Command
}

// Autopilot is a simple look-ahead jumper. It charges a jump when the
// next cucumber is within LeadFrames of travel and takes the first perk
// offered.
type Autopilot struct {
	LeadFrames  float64 // Frames of travel to look ahead
	HoldFrames  int     // Charge frames for a full-height obstacle
	UseAirJumps bool

	held int
}

// NewAutopilot returns an autopilot with tuned defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadFrames: 14, HoldFrames: 10, UseAirJumps: true}
}

// Decide implements Pilot.
func (a *Autopilot) Decide(s *neko.Snapshot) []core.Command {
	switch s.Phase {
	case neko.PhaseTitle:
		a.held = 0
		return []core.Command{core.PrimaryPress()}
	case neko.PhaseLevelUp:
		return []core.Command{core.PerkSelect(0)}
	case neko.PhaseGameOver:
		return nil
	}

	p := s.Player
	if p.Charging {
		a.held++
		if a.held >= a.holdFor(s) {
			a.held = 0
			return []core.Command{core.PrimaryRelease()}
		}
		return nil
	}

	next, ok := nextObstacle(s)
	if !ok {
		return nil
	}
	gap := next.X - (p.X + p.W)

	if p.OnGround {
		if gap <= s.Speed*a.LeadFrames {
			a.held = 0
			return []core.Command{core.PrimaryPress()}
		}
		return nil
	}

	// Falling onto a cucumber: spend an air jump if one is left.
	if a.UseAirJumps && p.AirJumps > 0 && p.VY > 0 && gap < p.W && p.Y+p.H > next.Y-p.H {
		return []core.Command{core.PrimaryPress(), core.PrimaryRelease()}
	}
	return nil
}

// holdFor scales the charge time with the height of the next obstacle.
func (a *Autopilot) holdFor(s *neko.Snapshot) int {
	next, ok := nextObstacle(s)
	if !ok || s.GroundY <= 0 {
		return a.HoldFrames
	}
	tall := (s.GroundY + s.Player.H - next.Y) / s.Player.H
	return core.Clamp(int(float64(a.HoldFrames)*tall), 1, a.HoldFrames*3)
}

// nextObstacle returns the closest unhit obstacle still ahead of the cat.
func nextObstacle(s *neko.Snapshot) (neko.Obstacle, bool) {
	var best neko.Obstacle
	found := false
	for _, o := range s.Obstacles {
		if o.Hit || o.X+o.W < s.Player.X {
			continue
		}
		if !found || o.X < best.X {
			best = o
			found = true
		}
	}
	return best, found
}
