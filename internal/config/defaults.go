package config

import (
	_ "embed"
)

//go:embed defaults/neko.yaml
var defaultNekoYAML []byte

// DefaultNekoConfig returns the hardcoded tuning, kept in sync with defaults/neko.yaml.
func DefaultNekoConfig() NekoConfig {
	return NekoConfig{
		Field: FieldConfig{
			Width:        960,
			Height:       540,
			GroundOffset: 110,
			SpawnMargin:  20,
			PruneBound:   -20,
		},
		Player: PlayerConfig{
			X:          120,
			Width:      52,
			Height:     52,
			StartLives: 3,
			MaxLives:   5,
		},
		Physics: PhysicsConfig{
			Gravity:            0.8,
			MaxFallSpeed:       18,
			BaseSpeed:          7,
			SpeedGain:          0.0006,
			SpeedPerRank:       0.5,
			HoverGravity:       0.16,
			HoverMaxFall:       1.5,
			HoverFramesPerRank: 20,
		},
		Jump: JumpConfig{
			MinImpulse:          -9,
			MaxImpulse:          -15,
			MaxImpulsePerRank:   -1.2,
			ChargeFrames:        30,
			ChargeFramesPerRank: 5,
			MinChargeFrames:     12,
			AirImpulse:          -11,
			AirImpulsePerRank:   -0.8,
		},
		Spawn: SpawnConfig{
			ObstacleInterval:   56,
			ObstacleSpread:     45,
			ObstacleMinSize:    42,
			ObstacleSizeSpread: 18,
			HeartInterval:      250,
			HeartSpread:        180,
			HeartWidth:         34,
			HeartHeight:        30,
			PowerUpInterval:    600,
			PowerUpSpread:      400,
			PowerUpSize:        32,
			ItemMinLift:        120,
			ItemLiftSpread:     120,
		},
		Difficulty: DifficultyConfig{
			Policy:       PolicyScore,
			Divisor:      600,
			MaxLevel:     10,
			InitialLevel: 0,
			Stack: StackConfig{
				FirstChance:          0.05,
				FirstChancePerLevel:  0.06,
				FirstChanceMax:       0.55,
				SecondChance:         0,
				SecondChancePerLevel: 0.04,
				SecondChanceMax:      0.3,
				OffsetMin:            10,
				OffsetMax:            30,
				OffsetPerLevel:       6,
				ScaleMin:             0.7,
				ScaleMax:             0.85,
				ScaleDropPerLevel:    0.02,
				FloorScale:           0.5,
				IntervalCutPerLevel:  0.03,
				MinIntervalScale:     0.7,
			},
		},
		Progression: ProgressionConfig{
			XPPerTick:          0.1,
			ObstacleXP:         12,
			ObstacleXPPerCombo: 1,
			ComboXPCap:         10,
			HeartXP:            15,
			PowerUpXP:          20,
			InitialThreshold:   60,
			GrowthFactor:       1.35,
			Choices:            3,
			SpecialChance:      0.25,
			StartRerolls:       1,
			RerollEvery:        3,
			GraceFrames:        90,
		},
		Combo: ComboConfig{
			Window:        120,
			StepEvery:     3,
			StepBonus:     0.25,
			MaxMultiplier: 3,
		},
		Combat: CombatConfig{
			FlashFrames:         8,
			ShieldFlashFrames:   4,
			InvincibleFrames:    300,
			MaxInvincibleFrames: 600,
			ExplosionScore:      25,
			ChainRadius:         90,
			ChainRadiusPerRank:  40,
			ChainRadiusPerPower: 20,
			ParticleCount:       10,
			ParticleLife:        30,
		},
		Companion: CompanionConfig{
			GrowthCap:              3,
			ReviveInvincibleFrames: 150,
			FollowOffset:           46,
			FollowRate:             0.15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultNekoYAML
}
