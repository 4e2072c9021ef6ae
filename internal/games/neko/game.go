// Package neko implements the Neko Runner simulation kernel: an endless
// runner where a cat charge-jumps over cucumbers, collects hearts and
// power-ups, levels up and stacks run-scoped perks.
//
// The kernel is single-threaded and frame-driven. The platform calls Tick
// once per frame and forwards input through Apply; both return the
// compact state and the events that happened.
package neko

import (
	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelUp
	PhaseGameOver
)

// String returns the phase name reported in core.GameState.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "level_up"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns the whole run state. Every subsystem is reached through it.
type Game struct {
	cfg        config.NekoConfig
	difficulty *config.DifficultyManager
	rng        *Random

	phase     Phase
	player    Player
	perks     PerkState
	entities  *Entities
	spawner   *Spawner
	combo     Combo
	companion Companion
	prog      Progression
	choices   []Choice

	speed        float64 // Base scroll speed, grows every tick
	score        int
	best         int
	lives        int
	shields      int // Unspent shield charges
	flash        int // Hit feedback ticks
	invincible   int // Invincibility ticks
	missileTimer int
	tickCount    int

	events []Event
}

// New creates a game in the Title phase with a seeded generator.
func New(cfg config.NekoConfig, seed int64) *Game {
	return NewWithRandom(cfg, NewRandom(seed))
}

// NewWithRandom creates a game drawing from rng.
func NewWithRandom(cfg config.NekoConfig, rng *Random) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		entities:   NewEntities(),
	}
	g.spawner = NewSpawner(&g.cfg, g.difficulty)
	g.reset()
	g.phase = PhaseTitle
	return g
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.NekoConfig {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// SetBest seeds the persisted best score. Only raises the value.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Best returns the best score seen by this game.
func (g *Game) Best() int {
	return g.best
}

// State returns the compact status polled by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase.String(),
		Score:    g.score,
		Best:     g.best,
		Lives:    g.lives,
		Level:    g.prog.Level,
		GameOver: g.phase == PhaseGameOver,
	}
}

// reset rebuilds every run-scoped value. The best score survives.
func (g *Game) reset() {
	g.perks = NewPerkState(g.cfg)
	g.player = newPlayer(g.cfg)
	g.entities.Reset()
	g.spawner.Reset(g.rng)
	g.combo = Combo{}
	g.companion = Companion{}
	g.prog = newProgression(g.cfg.Progression)
	g.choices = nil
	g.speed = g.cfg.Physics.BaseSpeed
	g.score = 0
	g.lives = g.cfg.Player.StartLives
	g.shields = 0
	g.flash = 0
	g.invincible = 0
	g.missileTimer = 0
	g.tickCount = 0
}

// Apply routes one input command. Invalid commands are no-ops.
func (g *Game) Apply(cmd core.Command) Result {
	g.events = nil

	switch cmd.Kind {
	case core.CommandPrimaryPress:
		g.primaryPress()
	case core.CommandPrimaryRelease:
		g.primaryRelease()
	case core.CommandPerkSelect:
		idx := cmd.Index
		if cmd.HasPoint {
			idx = choiceAt(g.choices, cmd.X, cmd.Y)
		}
		g.selectPerk(idx)
	case core.CommandPerkReroll:
		g.reroll()
	}

	return g.result()
}

// OnPrimaryPress handles a jump/confirm press.
func (g *Game) OnPrimaryPress() Result {
	return g.Apply(core.PrimaryPress())
}

// OnPrimaryRelease handles the release of the primary input.
func (g *Game) OnPrimaryRelease() Result {
	return g.Apply(core.PrimaryRelease())
}

// OnPerkSelect chooses the pending perk at index.
func (g *Game) OnPerkSelect(index int) Result {
	return g.Apply(core.PerkSelect(index))
}

// OnPerkReroll spends a reroll on new choices.
func (g *Game) OnPerkReroll() Result {
	return g.Apply(core.PerkReroll())
}

// Tick advances the simulation by one frame. Only the Playing phase
// simulates; other phases wait for input.
func (g *Game) Tick() Result {
	g.events = nil
	if g.phase == PhasePlaying {
		g.step()
	}
	return g.result()
}

func (g *Game) result() Result {
	return Result{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind EventKind, value int) {
	g.events = append(g.events, Event{Kind: kind, Value: value})
}

func (g *Game) primaryPress() {
	switch g.phase {
	case PhaseTitle:
		g.reset()
		g.phase = PhasePlaying
		g.emit(EventRunStart, g.best)
	case PhaseGameOver:
		g.phase = PhaseTitle
	case PhasePlaying:
		g.player.press(g.cfg.Jump, &g.perks)
	}
}

func (g *Game) primaryRelease() {
	if g.phase != PhasePlaying {
		g.player.cancelInput()
		return
	}
	g.player.release(g.cfg.Jump, &g.perks)
}

// step runs one Playing tick in a fixed order:
// physics, spawn, scroll, collisions, progression, decay, prune.
func (g *Game) step() {
	g.tickCount++
	g.score++
	g.speed += g.cfg.Physics.SpeedGain

	g.player.step(g.cfg, &g.perks)
	g.companion.Follow(&g.player, g.cfg.Companion)
	g.spawner.Update(g.rng, g.entities, g.score)
	g.entities.Scroll(g.ScrollSpeed())

	g.resolve()

	if g.phase == PhasePlaying {
		g.prog.Gain(g.cfg.Progression.XPPerTick)
		g.checkLevelUp()
	}

	g.combo.Decay()
	if g.flash > 0 {
		g.flash--
	}
	if g.invincible > 0 {
		g.invincible--
	}
	g.entities.UpdateEffects()
	g.entities.Prune(g.cfg.Field.PruneBound)
}

// ScrollSpeed returns the current world speed including perks.
func (g *Game) ScrollSpeed() float64 {
	return g.speed + g.cfg.Physics.SpeedPerRank*float64(g.perks.SpeedRank)
}

// checkLevelUp enters LevelUp once XP exceeds the threshold.
func (g *Game) checkLevelUp() {
	if g.phase != PhasePlaying || !g.prog.Ready() {
		return
	}
	g.prog.Advance(g.cfg.Progression)
	g.companion.OnLevelUp(g.perks.CompanionEnabled, g.cfg.Companion.GrowthCap, g.player.X, g.player.Y)
	g.player.cancelInput()
	g.offerChoices()
	g.phase = PhaseLevelUp
	g.emit(EventLevelUp, g.prog.Level)
}

func (g *Game) offerChoices() {
	p := g.cfg.Progression
	ids := SampleChoices(g.rng, &g.perks, p.Choices, p.SpecialChance)
	g.choices = layoutChoices(ids, g.cfg.Field.Width)
}

// selectPerk applies the chosen perk and resumes play on a cleared field.
func (g *Game) selectPerk(idx int) {
	if g.phase != PhaseLevelUp || idx < 0 || idx >= len(g.choices) {
		return
	}
	id := g.choices[idx].Perk.ID
	before := g.perks
	if !ApplyPerk(&g.perks, id) {
		return
	}
	g.applyPerkDeltas(before)

	g.choices = nil
	g.clearField()
	if grace := g.cfg.Progression.GraceFrames; g.invincible < grace {
		g.invincible = grace
	}
	g.phase = PhasePlaying
	g.events = append(g.events, Event{Kind: EventPerkApplied, Value: g.perks.Rank(id), Perk: id})
}

// applyPerkDeltas converts perk state changes into run state changes.
func (g *Game) applyPerkDeltas(before PerkState) {
	if gained := g.perks.MaxLives - before.MaxLives; gained > 0 {
		g.lives = core.Min(g.lives+gained, g.perks.MaxLives)
	}
	g.shields += g.perks.ShieldCharges - before.ShieldCharges
	if before.MissileRank == 0 && g.perks.MissileRank > 0 {
		g.missileTimer = g.perks.MissileCooldown
	}
	if !before.CompanionEnabled && g.perks.CompanionEnabled {
		g.companion.Enable(g.player.X, g.player.Y)
	}
	if g.player.OnGround {
		g.player.AirJumps = g.perks.MaxAirJumps
		g.player.HoverFrames = g.cfg.Physics.HoverFramesPerRank * g.perks.HoverRank
	}
}

func (g *Game) reroll() {
	if g.phase != PhaseLevelUp || g.prog.Rerolls <= 0 {
		return
	}
	g.prog.Rerolls--
	g.offerChoices()
	g.emit(EventReroll, g.prog.Rerolls)
}

// clearField wipes hazards and restarts spawn timers.
func (g *Game) clearField() {
	g.entities.ClearHazards()
	g.spawner.Reseed(g.rng, g.score)
}

// endRun records the best score and enters GameOver.
func (g *Game) endRun() {
	if g.score > g.best {
		g.best = g.score
		g.emit(EventNewBest, g.best)
	}
	g.phase = PhaseGameOver
	g.emit(EventGameOver, g.score)
}
