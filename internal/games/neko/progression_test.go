package neko

import (
	"math"
	"testing"

	"github.com/vovakirdan/neko-runner/internal/config"
)

func TestProgressionCarryOver(t *testing.T) {
	cfg := config.DefaultNekoConfig().Progression
	p := newProgression(cfg)

	p.XP = p.Threshold
	if p.Ready() {
		t.Fatal("XP equal to the threshold should not level up")
	}

	prevXP, prevThreshold := p.XP, p.Threshold
	p.Gain(5)
	if !p.Ready() {
		t.Fatal("XP above the threshold should level up")
	}
	p.Advance(cfg)

	if want := prevXP + 5 - prevThreshold; math.Abs(p.XP-want) > 1e-9 {
		t.Errorf("carried XP = %v, expected %v", p.XP, want)
	}
	if want := math.Floor(prevThreshold * cfg.GrowthFactor); p.Threshold != want {
		t.Errorf("threshold = %v, expected %v", p.Threshold, want)
	}
	if p.Level != 2 {
		t.Errorf("level = %d, expected 2", p.Level)
	}
}

func TestProgressionRerollEveryThirdLevel(t *testing.T) {
	cfg := config.DefaultNekoConfig().Progression
	p := newProgression(cfg)
	start := p.Rerolls

	for p.Level < 9 {
		p.XP = p.Threshold + 1
		p.Advance(cfg)
	}
	if p.Rerolls != start+3 {
		t.Errorf("rerolls = %d, expected %d after reaching level 9", p.Rerolls, start+3)
	}
}

func TestProgressionIgnoresNonPositiveGain(t *testing.T) {
	p := newProgression(config.DefaultNekoConfig().Progression)
	p.Gain(-10)
	p.Gain(0)
	if p.XP != 0 {
		t.Errorf("XP = %v, expected 0", p.XP)
	}
}

func TestObstacleXPScalesWithCombo(t *testing.T) {
	cfg := config.DefaultNekoConfig().Progression
	if got := ObstacleXP(cfg, 0); got != cfg.ObstacleXP {
		t.Errorf("XP at combo 0 = %v", got)
	}
	if ObstacleXP(cfg, 5) <= ObstacleXP(cfg, 1) {
		t.Error("XP should grow with combo")
	}
	if ObstacleXP(cfg, 1000) != ObstacleXP(cfg, cfg.ComboXPCap) {
		t.Error("XP should stop growing at the combo cap")
	}
}

func categoriesOf(ids []PerkID) map[Category]int {
	cats := make(map[Category]int)
	for _, id := range ids {
		def, _ := LookupPerk(id)
		cats[def.Category]++
	}
	return cats
}

func TestSampleChoicesCoversFirstCategories(t *testing.T) {
	ps := NewPerkState(config.DefaultNekoConfig())

	for seed := int64(1); seed <= 50; seed++ {
		ids := SampleChoices(NewRandom(seed), &ps, 3, 0)
		if len(ids) != 3 {
			t.Fatalf("seed %d: got %d choices", seed, len(ids))
		}
		cats := categoriesOf(ids)
		for _, cat := range firstCategories {
			if cats[cat] != 1 {
				t.Errorf("seed %d: category %s offered %d times in %v", seed, cat, cats[cat], ids)
			}
		}
	}
}

func TestSampleChoicesSpecialSwap(t *testing.T) {
	ps := NewPerkState(config.DefaultNekoConfig())

	for seed := int64(1); seed <= 20; seed++ {
		ids := SampleChoices(NewRandom(seed), &ps, 3, 1)
		if len(ids) != 3 {
			t.Fatalf("seed %d: got %d choices", seed, len(ids))
		}
		if categoriesOf(ids)[CategorySpecial] != 1 {
			t.Errorf("seed %d: expected exactly one special in %v", seed, ids)
		}
	}
}

func TestSampleChoicesNoDuplicatesAndSkipsMaxed(t *testing.T) {
	ps := NewPerkState(config.DefaultNekoConfig())
	for _, def := range Pool() {
		if def.Category == CategoryMobility {
			for ApplyPerk(&ps, def.ID) {
			}
		}
	}

	for seed := int64(1); seed <= 30; seed++ {
		ids := SampleChoices(NewRandom(seed), &ps, 3, 0.5)
		if len(ids) != 3 {
			t.Fatalf("seed %d: got %d choices", seed, len(ids))
		}
		seen := make(map[PerkID]bool)
		for _, id := range ids {
			if seen[id] {
				t.Errorf("seed %d: duplicate %s", seed, id)
			}
			seen[id] = true
			def, _ := LookupPerk(id)
			if def.Category == CategoryMobility {
				t.Errorf("seed %d: maxed mobility perk %s offered", seed, id)
			}
		}
	}
}

func TestSampleChoicesScripted(t *testing.T) {
	ps := NewPerkState(config.DefaultNekoConfig())
	// Always pick index 0 and never roll the special.
	src := &scriptedSource{floats: []float64{0.99}, ints: []int{0}}
	ids := SampleChoices(NewRandomFrom(src), &ps, 3, 0.25)

	cats := categoriesOf(ids)
	for _, cat := range firstCategories {
		if cats[cat] != 1 {
			t.Errorf("category %s offered %d times in %v", cat, cats[cat], ids)
		}
	}
}
