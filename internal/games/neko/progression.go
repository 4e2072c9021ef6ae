package neko

import (
	"math"

	"github.com/vovakirdan/neko-runner/internal/config"
)

// Progression tracks experience, level and the reroll budget.
type Progression struct {
	Level     int
	XP        float64
	Threshold float64
	Rerolls   int
}

func newProgression(cfg config.ProgressionConfig) Progression {
	return Progression{
		Level:     1,
		Threshold: cfg.InitialThreshold,
		Rerolls:   cfg.StartRerolls,
	}
}

// Gain adds experience. Non-positive amounts are ignored.
func (p *Progression) Gain(amount float64) {
	if amount > 0 {
		p.XP += amount
	}
}

// Ready reports whether XP has crossed the threshold.
func (p *Progression) Ready() bool {
	return p.XP > p.Threshold
}

// Advance consumes one threshold worth of XP and raises the level.
// Carried XP equals XP - previous threshold; the new threshold is
// floor(previous * growth).
func (p *Progression) Advance(cfg config.ProgressionConfig) {
	p.XP -= p.Threshold
	p.Threshold = math.Floor(p.Threshold * cfg.GrowthFactor)
	p.Level++
	if cfg.RerollEvery > 0 && p.Level%cfg.RerollEvery == 0 {
		p.Rerolls++
	}
}

// ObstacleXP returns the experience for destroying an obstacle at the
// given combo count.
func ObstacleXP(cfg config.ProgressionConfig, combo int) float64 {
	if combo > cfg.ComboXPCap {
		combo = cfg.ComboXPCap
	}
	return cfg.ObstacleXP + cfg.ObstacleXPPerCombo*float64(combo)
}

// firstCategories are guaranteed a slot in every offer when available.
var firstCategories = []Category{CategoryMobility, CategoryDestruction, CategoryVitality}

// SampleChoices draws up to n distinct perks the player can still take.
// One slot per first category is filled first; with specialChance one
// slot is swapped for a special perk; the rest are backfilled from the
// whole pool. The final order is shuffled.
func SampleChoices(rng *Random, ps *PerkState, n int, specialChance float64) []PerkID {
	if n <= 0 {
		return nil
	}

	picked := make([]PerkID, 0, n)
	taken := make(map[PerkID]bool, n)
	add := func(id PerkID) {
		picked = append(picked, id)
		taken[id] = true
	}

	for _, cat := range firstCategories {
		if len(picked) == n {
			break
		}
		if avail := availableIn(ps, taken, cat); len(avail) > 0 {
			add(avail[rng.Intn(len(avail))])
		}
	}

	if rng.Chance(specialChance) {
		if avail := availableIn(ps, taken, CategorySpecial); len(avail) > 0 {
			special := avail[rng.Intn(len(avail))]
			if len(picked) < n {
				add(special)
			} else {
				slot := rng.Intn(len(picked))
				delete(taken, picked[slot])
				picked[slot] = special
				taken[special] = true
			}
		}
	}

	if len(picked) < n {
		rest := make([]PerkID, 0, len(perkPool))
		for i := range perkPool {
			def := &perkPool[i]
			if !taken[def.ID] && ps.Available(def) {
				rest = append(rest, def.ID)
			}
		}
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, id := range rest {
			if len(picked) == n {
				break
			}
			add(id)
		}
	}

	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked
}

func availableIn(ps *PerkState, taken map[PerkID]bool, cat Category) []PerkID {
	var ids []PerkID
	for i := range perkPool {
		def := &perkPool[i]
		if def.Category == cat && !taken[def.ID] && ps.Available(def) {
			ids = append(ids, def.ID)
		}
	}
	return ids
}
