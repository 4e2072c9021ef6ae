// Package config provides YAML-based tuning for the runner and the
// difficulty policy used by the spawner.
package config

import (
	"errors"
	"fmt"
)

// NekoConfig contains every tunable number of the simulation.
type NekoConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Jump        JumpConfig        `yaml:"jump"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Progression ProgressionConfig `yaml:"progression"`
	Combo       ComboConfig       `yaml:"combo"`
	Combat      CombatConfig      `yaml:"combat"`
	Companion   CompanionConfig   `yaml:"companion"`
}

// FieldConfig defines the visible play field in field units.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from bottom edge to the player's top at rest
	SpawnMargin  float64 `yaml:"spawn_margin"`  // Entities appear this far beyond the right edge
	PruneBound   float64 `yaml:"prune_bound"`   // Entities whose right edge passes this X are removed
}

// PlayerConfig defines the runner's body and life budget.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartLives int     `yaml:"start_lives"`
	MaxLives   int     `yaml:"max_lives"`
}

// PhysicsConfig defines gravity, scrolling and hover parameters.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedGain          float64 `yaml:"speed_gain"`     // Added to scroll speed every tick
	SpeedPerRank       float64 `yaml:"speed_per_rank"` // Scroll speed per swift-paws rank
	HoverGravity       float64 `yaml:"hover_gravity"`  // Fraction of gravity applied while hovering
	HoverMaxFall       float64 `yaml:"hover_max_fall"` // Downward velocity clamp while hovering
	HoverFramesPerRank int     `yaml:"hover_frames_per_rank"`
}

// JumpConfig defines the charge jump and air jump impulses (negative = up).
type JumpConfig struct {
	MinImpulse          float64 `yaml:"min_impulse"`
	MaxImpulse          float64 `yaml:"max_impulse"`
	MaxImpulsePerRank   float64 `yaml:"max_impulse_per_rank"`
	ChargeFrames        int     `yaml:"charge_frames"`
	ChargeFramesPerRank int     `yaml:"charge_frames_per_rank"`
	MinChargeFrames     int     `yaml:"min_charge_frames"`
	AirImpulse          float64 `yaml:"air_impulse"`
	AirImpulsePerRank   float64 `yaml:"air_impulse_per_rank"`
}

// SpawnConfig defines spawn timers and entity sizes.
type SpawnConfig struct {
	ObstacleInterval   float64 `yaml:"obstacle_interval"`
	ObstacleSpread     float64 `yaml:"obstacle_spread"`
	ObstacleMinSize    float64 `yaml:"obstacle_min_size"`
	ObstacleSizeSpread float64 `yaml:"obstacle_size_spread"`
	HeartInterval      float64 `yaml:"heart_interval"`
	HeartSpread        float64 `yaml:"heart_spread"`
	HeartWidth         float64 `yaml:"heart_width"`
	HeartHeight        float64 `yaml:"heart_height"`
	PowerUpInterval    float64 `yaml:"power_up_interval"`
	PowerUpSpread      float64 `yaml:"power_up_spread"`
	PowerUpSize        float64 `yaml:"power_up_size"`
	ItemMinLift        float64 `yaml:"item_min_lift"` // Items float at least this far above the ground line
	ItemLiftSpread     float64 `yaml:"item_lift_spread"`
}

// ProgressionConfig defines XP, leveling and perk offers.
type ProgressionConfig struct {
	XPPerTick          float64 `yaml:"xp_per_tick"`
	ObstacleXP         float64 `yaml:"obstacle_xp"`
	ObstacleXPPerCombo float64 `yaml:"obstacle_xp_per_combo"`
	ComboXPCap         int     `yaml:"combo_xp_cap"`
	HeartXP            float64 `yaml:"heart_xp"`
	PowerUpXP          float64 `yaml:"power_up_xp"`
	InitialThreshold   float64 `yaml:"initial_threshold"`
	GrowthFactor       float64 `yaml:"growth_factor"`
	Choices            int     `yaml:"choices"`
	SpecialChance      float64 `yaml:"special_chance"`
	StartRerolls       int     `yaml:"start_rerolls"`
	RerollEvery        int     `yaml:"reroll_every"` // A reroll is granted every N levels
	GraceFrames        int     `yaml:"grace_frames"` // Invincibility after a perk is chosen
}

// ComboConfig defines the combo window and score multiplier curve.
type ComboConfig struct {
	Window        int     `yaml:"window"`
	StepEvery     int     `yaml:"step_every"`
	StepBonus     float64 `yaml:"step_bonus"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// CombatConfig defines damage feedback, explosions and missiles.
type CombatConfig struct {
	FlashFrames         int     `yaml:"flash_frames"`
	ShieldFlashFrames   int     `yaml:"shield_flash_frames"`
	InvincibleFrames    int     `yaml:"invincible_frames"`
	MaxInvincibleFrames int     `yaml:"max_invincible_frames"`
	ExplosionScore      int     `yaml:"explosion_score"`
	ChainRadius         float64 `yaml:"chain_radius"`
	ChainRadiusPerRank  float64 `yaml:"chain_radius_per_rank"`
	ChainRadiusPerPower float64 `yaml:"chain_radius_per_power"`
	ParticleCount       int     `yaml:"particle_count"`
	ParticleLife        int     `yaml:"particle_life"`
}

// CompanionConfig defines the kitten's growth and revive.
type CompanionConfig struct {
	GrowthCap              int     `yaml:"growth_cap"`
	ReviveInvincibleFrames int     `yaml:"revive_invincible_frames"`
	FollowOffset           float64 `yaml:"follow_offset"`
	FollowRate             float64 `yaml:"follow_rate"`
}

// GroundY returns the player's top Y coordinate when standing on the ground.
func (c NekoConfig) GroundY() float64 {
	return c.Field.Height - c.Field.GroundOffset
}

// Validate reports every tuning value that would break a simulation invariant.
func (c NekoConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Player.StartLives <= 0 {
		errs = append(errs, fmt.Errorf("player: start_lives must be positive, got %d", c.Player.StartLives))
	}
	if c.Player.MaxLives < c.Player.StartLives {
		errs = append(errs, fmt.Errorf("player: max_lives %d below start_lives %d", c.Player.MaxLives, c.Player.StartLives))
	}
	if c.Jump.MinChargeFrames <= 0 || c.Jump.ChargeFrames < c.Jump.MinChargeFrames {
		errs = append(errs, errors.New("jump: charge_frames must be >= min_charge_frames > 0"))
	}
	if c.Jump.MaxImpulse > c.Jump.MinImpulse {
		errs = append(errs, errors.New("jump: max_impulse must be at least as strong (as negative) as min_impulse"))
	}
	if c.Progression.InitialThreshold < 1 {
		errs = append(errs, fmt.Errorf("progression: initial_threshold must be at least 1, got %v", c.Progression.InitialThreshold))
	}
	if c.Progression.GrowthFactor <= 1 {
		errs = append(errs, fmt.Errorf("progression: growth_factor must exceed 1, got %v", c.Progression.GrowthFactor))
	}
	if c.Progression.Choices <= 0 {
		errs = append(errs, errors.New("progression: choices must be positive"))
	}
	if c.Progression.RerollEvery <= 0 {
		errs = append(errs, errors.New("progression: reroll_every must be positive"))
	}
	if c.Combo.StepEvery <= 0 || c.Combo.MaxMultiplier < 1 {
		errs = append(errs, errors.New("combo: step_every must be positive and max_multiplier >= 1"))
	}
	if c.Companion.GrowthCap <= 0 {
		errs = append(errs, errors.New("companion: growth_cap must be positive"))
	}
	if err := c.Difficulty.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyNekoPreset modifies the config based on a difficulty preset.
func ApplyNekoPreset(cfg *NekoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Policy = PolicyScore
		cfg.Difficulty.InitialLevel = 0
		cfg.Player.StartLives = 4
	case DifficultyNormal:
		cfg.Difficulty.Policy = PolicyScore
		cfg.Difficulty.InitialLevel = 1
	case DifficultyHard:
		cfg.Difficulty.Policy = PolicyScore
		cfg.Difficulty.InitialLevel = 3
		cfg.Player.StartLives = 2
	case DifficultyFixed:
		cfg.Difficulty.Policy = PolicyFlat
	}
}
