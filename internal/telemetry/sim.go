package telemetry

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/games/neko"
)

// RunRecord is the outcome of one simulated run.
type RunRecord struct {
	Run      int   `csv:"run"`
	Seed     int64 `csv:"seed"`
	Score    int   `csv:"score"`
	Level    int   `csv:"level"`
	Ticks    int   `csv:"ticks"`
	Ended    bool  `csv:"ended"` // False when the tick limit cut the run short
	Lives    int   `csv:"lives_left"`
	MaxCombo int   `csv:"max_combo"`

	Hits       int `csv:"hits"`
	Blocks     int `csv:"shield_blocks"`
	Explosions int `csv:"explosions"`
	Missiles   int `csv:"missiles"`
	Hearts     int `csv:"hearts"`
	PowerUps   int `csv:"power_ups"`
	Revives    int `csv:"revives"`
	LevelUps   int `csv:"level_ups"`

	Perks string `csv:"perks"`
}

// record tallies one event.
func (r *RunRecord) record(ev neko.Event) {
	switch ev.Kind {
	case neko.EventHit:
		r.Hits++
	case neko.EventShieldBlock:
		r.Blocks++
	case neko.EventExplosion:
		r.Explosions++
	case neko.EventMissile:
		r.Missiles++
	case neko.EventHeart:
		r.Hearts++
	case neko.EventPowerUp:
		r.PowerUps++
	case neko.EventRevive:
		r.Revives++
	case neko.EventLevelUp:
		r.LevelUps++
	case neko.EventGameOver:
		r.Ended = true
	}
}

// Simulate plays one run with the given pilot until game over or
// maxTicks simulated frames.
func Simulate(cfg config.NekoConfig, seed int64, maxTicks int, pilot Pilot) RunRecord {
	g := neko.New(cfg, seed)
	rec := RunRecord{Seed: seed}

	// Level-up screens do not advance the clock, so cap decisions too.
	for steps := 0; steps < maxTicks*2 && !rec.Ended; steps++ {
		snap := g.Snapshot()
		if snap.Tick >= maxTicks {
			break
		}
		for _, cmd := range pilot.Decide(&snap) {
			for _, ev := range g.Apply(cmd).Events {
				rec.record(ev)
			}
		}
		for _, ev := range g.Tick().Events {
			rec.record(ev)
		}
		rec.MaxCombo = max(rec.MaxCombo, g.Snapshot().Combo)
	}

	snap := g.Snapshot()
	rec.Score = snap.Score
	rec.Level = snap.Level
	rec.Ticks = snap.Tick
	rec.Lives = snap.Lives
	rec.Perks = neko.FormatRanks(snap.Ranks)
	return rec
}

// BatchOptions configures a batch of simulated runs.
type BatchOptions struct {
	Runs     int
	MaxTicks int
	Seed     int64 // Run i uses Seed+i
	Workers  int   // Defaults to GOMAXPROCS

	// NewPilot builds a fresh pilot per run. Defaults to NewAutopilot.
	NewPilot func() Pilot
}

// Batch runs independent simulations in parallel. Records are returned
// in run order, so the output is deterministic for a given seed.
func Batch(ctx context.Context, cfg config.NekoConfig, opts BatchOptions) ([]RunRecord, error) {
	if opts.Runs <= 0 {
		return nil, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Runs)
	newPilot := opts.NewPilot
	if newPilot == nil {
		newPilot = func() Pilot { return NewAutopilot() }
	}

	records := make([]RunRecord, opts.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Runs; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec := Simulate(cfg, opts.Seed+int64(i), opts.MaxTicks, newPilot())
			rec.Run = i + 1
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A run skipped by cancellation leaves no error behind in the group.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
