package neko

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
)

func startedGame(t *testing.T, cfg config.NekoConfig) *Game {
	t.Helper()
	g := New(cfg, 1)
	res := g.OnPrimaryPress()
	if g.phase != PhasePlaying {
		t.Fatalf("press on title should start a run, phase=%s", g.phase)
	}
	if !res.Has(EventRunStart) {
		t.Fatal("expected run start event")
	}
	return g
}

// obstacleOnPlayer places an obstacle that will overlap the standing
// player after this tick's scroll.
func obstacleOnPlayer(g *Game) {
	g.entities.AddObstacle(Obstacle{X: g.player.X + 10, Y: g.player.Y, W: 40, H: 40})
}

func TestTitleStartsRun(t *testing.T) {
	g := New(config.DefaultNekoConfig(), 1)
	if g.Phase() != PhaseTitle {
		t.Fatalf("new game phase = %s, expected title", g.Phase())
	}

	res := g.Tick()
	if res.State.Score != 0 {
		t.Error("title phase should not simulate")
	}

	g.OnPrimaryPress()
	st := g.State()
	if st.Phase != "playing" || st.Lives != 3 || st.Score != 0 {
		t.Errorf("unexpected start state %+v", st)
	}
}

func TestHitCostsLifeAndResetsCombo(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.combo = Combo{Count: 4, Timer: 50}
	obstacleOnPlayer(g)

	res := g.Tick()

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if g.combo.Count != 0 {
		t.Errorf("combo = %d, expected 0", g.combo.Count)
	}
	if g.flash != g.cfg.Combat.FlashFrames-1 {
		t.Errorf("flash = %d, expected %d", g.flash, g.cfg.Combat.FlashFrames-1)
	}
	if !res.Has(EventHit) {
		t.Error("expected hit event")
	}
	for _, o := range g.entities.Obstacles {
		if o.Hit {
			t.Error("consumed obstacle survived the tick")
		}
	}
	if Multiplier(g.combo.Count, g.cfg.Combo, g.perks.ComboScoreBonus) != 1 {
		t.Error("multiplier should be 1 after a hit")
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.shields = 1
	obstacleOnPlayer(g)

	res := g.Tick()

	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3", g.lives)
	}
	if g.shields != 0 {
		t.Errorf("shields = %d, expected 0", g.shields)
	}
	if !res.Has(EventShieldBlock) || res.Has(EventHit) {
		t.Errorf("unexpected events %v", res.Events)
	}
}

func TestInvincibleHitExplodes(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.invincible = 10
	obstacleOnPlayer(g)

	res := g.Tick()

	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3", g.lives)
	}
	if g.combo.Count != 1 {
		t.Errorf("combo = %d, expected 1", g.combo.Count)
	}
	if want := 1 + g.cfg.Combat.ExplosionScore; g.score != want {
		t.Errorf("score = %d, expected %d", g.score, want)
	}
	if !res.Has(EventExplosion) {
		t.Error("expected explosion event")
	}
	if len(g.entities.Effects) == 0 {
		t.Error("explosion should spawn particles")
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.lives = 1
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	obstacleOnPlayer(g)

	res := g.Tick()

	if g.phase != PhaseGameOver || !res.State.GameOver {
		t.Fatalf("phase = %s, expected game over", g.phase)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
	if g.best != g.score || !res.Has(EventNewBest) {
		t.Errorf("best = %d, score = %d", g.best, g.score)
	}

	score := g.score
	g.Tick()
	if g.score != score {
		t.Error("game over should not simulate")
	}

	g.OnPrimaryPress()
	if g.phase != PhaseTitle {
		t.Fatalf("press on game over should return to title, got %s", g.phase)
	}
	if g.score != score {
		t.Error("returning to title should not reset the run")
	}

	g.OnPrimaryPress()
	if g.phase != PhasePlaying || g.lives != 3 || g.score != 0 {
		t.Errorf("new run not reset: phase=%s lives=%d score=%d", g.phase, g.lives, g.score)
	}
	if g.best != score {
		t.Errorf("best = %d lost across runs, expected %d", g.best, score)
	}
}

func TestSetBestOnlyRaises(t *testing.T) {
	g := New(config.DefaultNekoConfig(), 1)
	g.SetBest(500)
	g.SetBest(100)
	if g.Best() != 500 {
		t.Errorf("best = %d, expected 500", g.Best())
	}
}

func TestCompanionRevive(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	ApplyPerk(&g.perks, PerkKitten)
	g.companion = Companion{Active: true, Growth: 3, Grown: true}
	g.lives = 1
	obstacleOnPlayer(g)

	res := g.Tick()

	if g.phase != PhasePlaying {
		t.Fatalf("revive should cancel game over, phase=%s", g.phase)
	}
	if want := int(math.Ceil(float64(g.perks.MaxLives) / 2)); g.lives != want {
		t.Errorf("lives = %d, expected %d", g.lives, want)
	}
	if g.companion.Active || g.companion.Grown || g.companion.Growth != 0 {
		t.Errorf("companion not consumed: %+v", g.companion)
	}
	if g.invincible == 0 {
		t.Error("revive should grant invincibility")
	}
	if len(g.entities.Obstacles) != 0 {
		t.Errorf("revive should clear obstacles, %d left", len(g.entities.Obstacles))
	}
	if !res.Has(EventRevive) || res.Has(EventGameOver) {
		t.Errorf("unexpected events %v", res.Events)
	}
}

func TestHeartPickup(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.lives = 2
	g.entities.AddHeart(Item{X: g.player.X + 10, Y: g.player.Y, W: 34, H: 30})

	res := g.Tick()

	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3", g.lives)
	}
	if !res.Has(EventHeart) {
		t.Error("expected heart event")
	}
	if g.prog.XP < g.cfg.Progression.HeartXP {
		t.Errorf("XP = %v, expected at least %v", g.prog.XP, g.cfg.Progression.HeartXP)
	}
}

func TestHeartAtCapFeedsCompanion(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.lives = g.perks.MaxLives
	g.companion.Enable(0, 0)
	g.entities.AddHeart(Item{X: g.player.X + 10, Y: g.player.Y, W: 34, H: 30})

	g.Tick()

	if g.lives != g.perks.MaxLives {
		t.Errorf("lives = %d exceeded cap %d", g.lives, g.perks.MaxLives)
	}
	if g.companion.Growth != 1 {
		t.Errorf("companion growth = %d, expected 1", g.companion.Growth)
	}
}

func TestPowerUpGrantsInvincibility(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.entities.AddPowerUp(Item{X: g.player.X + 10, Y: g.player.Y, W: 32, H: 32})

	res := g.Tick()

	if want := g.cfg.Combat.InvincibleFrames - 1; g.invincible != want {
		t.Errorf("invincible = %d, expected %d", g.invincible, want)
	}
	if !res.Has(EventPowerUp) {
		t.Error("expected power-up event")
	}
}

func TestMissileDestroysNearestAhead(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	ApplyPerk(&g.perks, PerkMissile)
	g.missileTimer = 1
	g.entities.AddObstacle(Obstacle{X: 600, Y: 400, W: 40, H: 40})
	g.entities.AddObstacle(Obstacle{X: 400, Y: 400, W: 40, H: 40})

	res := g.Tick()

	if !res.Has(EventMissile) {
		t.Fatal("expected missile event")
	}
	onScreen := 0
	for _, o := range g.entities.Obstacles {
		if o.X < 500 {
			t.Errorf("nearest obstacle at %v should have been destroyed", o.X)
		}
		if o.X < g.cfg.Field.Width {
			onScreen++
		}
	}
	if onScreen != 1 {
		t.Errorf("expected only the far obstacle on screen, got %d", onScreen)
	}
	if g.missileTimer != g.perks.MissileCooldown {
		t.Errorf("missile timer = %d, expected %d", g.missileTimer, g.perks.MissileCooldown)
	}
}

func TestChainBlastDoesNotPropagate(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	ApplyPerk(&g.perks, PerkChainBlast)
	g.invincible = 10
	y := g.player.Y
	obstacleOnPlayer(g)
	g.entities.AddObstacle(Obstacle{X: g.player.X + 70, Y: y, W: 40, H: 40})  // within radius of the first
	g.entities.AddObstacle(Obstacle{X: g.player.X + 140, Y: y, W: 40, H: 40}) // only within radius of the second

	g.Tick()

	if g.combo.Count != 2 {
		t.Errorf("combo = %d, expected 2 explosions", g.combo.Count)
	}
	survivors := 0
	for _, o := range g.entities.Obstacles {
		if o.X < 500 {
			survivors++
		}
	}
	if survivors != 1 {
		t.Errorf("expected the far obstacle to survive, got %d near survivors", survivors)
	}
}

func levelUpConfig() config.NekoConfig {
	cfg := config.DefaultNekoConfig()
	cfg.Progression.SpecialChance = 0
	return cfg
}

func TestLevelUpOffersOnePerCategory(t *testing.T) {
	g := startedGame(t, levelUpConfig())
	g.prog.XP = g.prog.Threshold
	prevThreshold := g.prog.Threshold

	res := g.Tick()

	if g.phase != PhaseLevelUp {
		t.Fatalf("phase = %s, expected level_up", g.phase)
	}
	if !res.Has(EventLevelUp) {
		t.Error("expected level up event")
	}
	if len(g.choices) != 3 {
		t.Fatalf("got %d choices, expected 3", len(g.choices))
	}
	cats := make(map[Category]int)
	for _, c := range g.choices {
		cats[c.Perk.Category]++
	}
	for _, cat := range firstCategories {
		if cats[cat] != 1 {
			t.Errorf("category %s offered %d times", cat, cats[cat])
		}
	}
	if math.Abs(g.prog.XP-g.cfg.Progression.XPPerTick) > 1e-9 {
		t.Errorf("carried XP = %v, expected %v", g.prog.XP, g.cfg.Progression.XPPerTick)
	}
	if g.prog.Threshold != math.Floor(prevThreshold*g.cfg.Progression.GrowthFactor) {
		t.Errorf("threshold = %v", g.prog.Threshold)
	}

	score := g.score
	g.Tick()
	if g.score != score {
		t.Error("level up should suspend the simulation")
	}
}

func TestPerkSelectionResumesPlay(t *testing.T) {
	g := startedGame(t, levelUpConfig())
	g.prog.XP = g.prog.Threshold
	g.Tick()

	g.OnPerkSelect(7)
	if g.phase != PhaseLevelUp {
		t.Fatal("out of range selection should be ignored")
	}

	id := g.choices[1].Perk.ID
	res := g.OnPerkSelect(1)

	if g.phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", g.phase)
	}
	if g.perks.Rank(id) != 1 {
		t.Errorf("perk %s rank = %d, expected 1", id, g.perks.Rank(id))
	}
	if len(g.choices) != 0 {
		t.Error("choices should be cleared")
	}
	if len(g.entities.Obstacles)+len(g.entities.Hearts)+len(g.entities.PowerUps) != 0 {
		t.Error("hazards should be cleared")
	}
	if g.invincible < g.cfg.Progression.GraceFrames {
		t.Errorf("invincible = %d, expected grace %d", g.invincible, g.cfg.Progression.GraceFrames)
	}
	if !res.Has(EventPerkApplied) {
		t.Error("expected perk applied event")
	}

	g.OnPerkSelect(0)
	if len(g.perks.Ranks) != 1 {
		t.Error("selection outside level up should be ignored")
	}
}

func TestPerkSelectByPoint(t *testing.T) {
	g := startedGame(t, levelUpConfig())
	g.prog.XP = g.prog.Threshold
	g.Tick()

	snap := g.Snapshot()
	x, y := snap.Choices[2].Region.Center()
	id := snap.Choices[2].Perk.ID
	if got := snap.ChoiceAt(x, y); got != 2 {
		t.Fatalf("snapshot ChoiceAt = %d, want 2", got)
	}

	g.Apply(core.PerkSelectAt(1, 1))
	if g.phase != PhaseLevelUp {
		t.Fatal("a miss should not select")
	}

	g.Apply(core.PerkSelectAt(x, y))
	if g.perks.Rank(id) != 1 {
		t.Errorf("perk %s not applied by pointer", id)
	}
}

func TestReroll(t *testing.T) {
	g := startedGame(t, levelUpConfig())

	g.OnPerkReroll()
	if g.prog.Rerolls != g.cfg.Progression.StartRerolls {
		t.Fatal("reroll outside level up should be ignored")
	}

	g.prog.XP = g.prog.Threshold
	g.Tick()

	res := g.OnPerkReroll()
	if !res.Has(EventReroll) || g.prog.Rerolls != 0 {
		t.Fatalf("reroll not spent: rerolls=%d", g.prog.Rerolls)
	}
	if len(g.choices) != 3 {
		t.Errorf("got %d choices after reroll", len(g.choices))
	}

	res = g.OnPerkReroll()
	if res.Has(EventReroll) {
		t.Error("reroll with no budget should be a no-op")
	}
}

func TestExtraHeartGrantsLife(t *testing.T) {
	g := startedGame(t, levelUpConfig())
	g.phase = PhaseLevelUp
	g.choices = layoutChoices([]PerkID{PerkExtraHeart, PerkShield, PerkKitten}, g.cfg.Field.Width)

	g.OnPerkSelect(0)

	if g.perks.MaxLives != g.cfg.Player.MaxLives+1 || g.lives != 4 {
		t.Errorf("max=%d lives=%d", g.perks.MaxLives, g.lives)
	}
}

func TestChargeJumpThroughKernel(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())

	g.OnPrimaryPress()
	limit := ChargeLimit(g.cfg.Jump, &g.perks)
	for i := 0; i < limit; i++ {
		g.Tick()
	}
	if r := g.Snapshot().ChargeRatio; r != 1 {
		t.Fatalf("charge ratio = %v, expected 1", r)
	}

	g.OnPrimaryRelease()
	if g.player.VY != g.cfg.Jump.MaxImpulse {
		t.Errorf("VY = %v, expected %v", g.player.VY, g.cfg.Jump.MaxImpulse)
	}
}

func TestLevelUpCancelsHeldInput(t *testing.T) {
	g := startedGame(t, levelUpConfig())
	g.OnPrimaryPress()
	g.prog.XP = g.prog.Threshold
	g.Tick()

	if g.player.Charging || g.player.Pressing {
		t.Error("entering level up should drop held input")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(t, config.DefaultNekoConfig())
	g.Tick()

	snap := g.Snapshot()
	if len(snap.Obstacles) == 0 {
		t.Fatal("expected a spawned obstacle")
	}
	snap.Obstacles[0].X = -999
	snap.Ranks[PerkShield] = 9

	if g.entities.Obstacles[0].X == -999 {
		t.Error("snapshot aliases obstacles")
	}
	if g.perks.Rank(PerkShield) != 0 {
		t.Error("snapshot aliases perk ranks")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, int) {
		g := New(config.DefaultNekoConfig(), 99)
		g.OnPrimaryPress()
		for i := 0; i < 3000 && g.phase != PhaseGameOver; i++ {
			switch i % 40 {
			case 0:
				g.OnPrimaryPress()
			case 12:
				g.OnPrimaryRelease()
			}
			if g.phase == PhaseLevelUp {
				g.OnPerkSelect(0)
			}
			g.Tick()
		}
		return g.score, g.tickCount
	}

	s1, t1 := run()
	s2, t2 := run()
	if s1 != s2 || t1 != t2 {
		t.Errorf("runs diverged: score %d vs %d, ticks %d vs %d", s1, s2, t1, t2)
	}
}

func TestLivesStayInBounds(t *testing.T) {
	g := New(config.DefaultNekoConfig(), 5)
	input := rand.New(rand.NewSource(5))

	check := func(step int) {
		if g.lives < 0 || g.lives > g.perks.MaxLives {
			t.Fatalf("step %d: lives %d outside [0, %d]", step, g.lives, g.perks.MaxLives)
		}
		if g.phase == PhasePlaying && g.lives == 0 {
			t.Fatalf("step %d: playing with zero lives", step)
		}
	}

	for i := 0; i < 20000; i++ {
		switch g.phase {
		case PhaseTitle, PhaseGameOver:
			g.OnPrimaryPress()
		case PhaseLevelUp:
			if input.Intn(4) == 0 {
				g.OnPerkReroll()
			}
			g.OnPerkSelect(input.Intn(3))
		case PhasePlaying:
			switch input.Intn(12) {
			case 0:
				g.OnPrimaryPress()
			case 1:
				g.OnPrimaryRelease()
			}
		}
		check(i)

		g.Tick()
		check(i)
		for _, o := range g.entities.Obstacles {
			if o.Hit {
				t.Fatalf("step %d: consumed obstacle survived the tick", i)
			}
		}
	}
}

func TestSwiftPawsSpeedsUpWithoutExtraScore(t *testing.T) {
	base := startedGame(t, config.DefaultNekoConfig())
	fast := startedGame(t, config.DefaultNekoConfig())
	for i := 0; i < 3; i++ {
		ApplyPerk(&fast.perks, PerkSwiftPaws)
	}

	for i := 0; i < 10; i++ {
		base.Tick()
		fast.Tick()
	}

	if fast.ScrollSpeed() <= base.ScrollSpeed() {
		t.Errorf("swift paws speed %v should beat base %v", fast.ScrollSpeed(), base.ScrollSpeed())
	}
	if base.score != 10 || fast.score != 10 {
		t.Errorf("distance score should be one per tick: base=%d fast=%d", base.score, fast.score)
	}
}
