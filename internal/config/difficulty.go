package config

import (
	"fmt"
	"math"
)

// Difficulty policies.
const (
	PolicyScore = "score" // Difficulty level = floor(score / divisor), ramps stacking odds
	PolicyFlat  = "flat"  // Fixed stacking odds regardless of score
)

// DifficultyConfig defines how obstacle stacking scales.
type DifficultyConfig struct {
	Policy       string      `yaml:"policy"`
	Divisor      int         `yaml:"divisor"`       // Score per difficulty level (score policy)
	MaxLevel     int         `yaml:"max_level"`     // Level cap (score policy)
	InitialLevel int         `yaml:"initial_level"` // Level at score 0
	Stack        StackConfig `yaml:"stack"`
}

// StackConfig defines extra-obstacle odds, offsets and scale-downs.
// *PerLevel fields only apply under the score policy.
type StackConfig struct {
	FirstChance          float64 `yaml:"first_chance"`
	FirstChancePerLevel  float64 `yaml:"first_chance_per_level"`
	FirstChanceMax       float64 `yaml:"first_chance_max"`
	SecondChance         float64 `yaml:"second_chance"`
	SecondChancePerLevel float64 `yaml:"second_chance_per_level"`
	SecondChanceMax      float64 `yaml:"second_chance_max"`
	OffsetMin            float64 `yaml:"offset_min"`
	OffsetMax            float64 `yaml:"offset_max"`
	OffsetPerLevel       float64 `yaml:"offset_per_level"`
	ScaleMin             float64 `yaml:"scale_min"`
	ScaleMax             float64 `yaml:"scale_max"`
	ScaleDropPerLevel    float64 `yaml:"scale_drop_per_level"`
	FloorScale           float64 `yaml:"floor_scale"`
	IntervalCutPerLevel  float64 `yaml:"interval_cut_per_level"`
	MinIntervalScale     float64 `yaml:"min_interval_scale"`
}

// StackPlan is the resolved spawn policy for one obstacle wave.
type StackPlan struct {
	Level         int
	FirstChance   float64 // Probability of one extra obstacle
	SecondChance  float64 // Probability of a second extra (only rolled if the first fired)
	OffsetMin     float64
	OffsetMax     float64
	ScaleMin      float64
	ScaleMax      float64
	IntervalScale float64 // Multiplier on the obstacle spawn interval
}

func (c DifficultyConfig) validate() error {
	switch c.Policy {
	case PolicyScore:
		if c.Divisor <= 0 {
			return fmt.Errorf("difficulty: divisor must be positive, got %d", c.Divisor)
		}
	case PolicyFlat:
	default:
		return fmt.Errorf("difficulty: unknown policy %q", c.Policy)
	}
	if c.Stack.OffsetMax < c.Stack.OffsetMin || c.Stack.ScaleMax < c.Stack.ScaleMin {
		return fmt.Errorf("difficulty: stack ranges must have max >= min")
	}
	return nil
}

// DifficultyManager turns the current score into a StackPlan.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty level for the given score.
func (d *DifficultyManager) Level(score int) int {
	if d.cfg.Policy != PolicyScore || d.cfg.Divisor <= 0 {
		return d.cfg.InitialLevel
	}
	level := d.cfg.InitialLevel + score/d.cfg.Divisor
	if d.cfg.MaxLevel > 0 && level > d.cfg.MaxLevel {
		level = d.cfg.MaxLevel
	}
	return level
}

// Plan resolves stacking odds and ranges for the given score.
func (d *DifficultyManager) Plan(score int) StackPlan {
	s := d.cfg.Stack
	plan := StackPlan{
		Level:         d.Level(score),
		FirstChance:   s.FirstChance,
		SecondChance:  s.SecondChance,
		OffsetMin:     s.OffsetMin,
		OffsetMax:     s.OffsetMax,
		ScaleMin:      s.ScaleMin,
		ScaleMax:      s.ScaleMax,
		IntervalScale: 1,
	}
	if d.cfg.Policy != PolicyScore {
		return plan
	}

	lvl := float64(plan.Level)
	plan.FirstChance = math.Min(s.FirstChanceMax, s.FirstChance+lvl*s.FirstChancePerLevel)
	plan.SecondChance = math.Min(s.SecondChanceMax, s.SecondChance+lvl*s.SecondChancePerLevel)
	plan.OffsetMax = s.OffsetMax + lvl*s.OffsetPerLevel
	plan.ScaleMin = math.Max(s.FloorScale, s.ScaleMin-lvl*s.ScaleDropPerLevel)
	if plan.ScaleMax < plan.ScaleMin {
		plan.ScaleMax = plan.ScaleMin
	}
	plan.IntervalScale = math.Max(s.MinIntervalScale, 1-lvl*s.IntervalCutPerLevel)
	return plan
}
