package neko

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/neko-runner/internal/config"
)

// Category groups perks into the axes offered at level-up.
type Category int

const (
	CategoryMobility Category = iota
	CategoryDestruction
	CategoryVitality
	CategorySpecial
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryMobility:
		return "Mobility"
	case CategoryDestruction:
		return "Destruction"
	case CategoryVitality:
		return "Vitality"
	case CategorySpecial:
		return "Special"
	default:
		return "?"
	}
}

// PerkID identifies a perk. ApplyPerk interprets it.
type PerkID string

const (
	PerkSwiftPaws   PerkID = "swift_paws"
	PerkDoubleJump  PerkID = "double_jump"
	PerkQuickCharge PerkID = "quick_charge"
	PerkPowerLeap   PerkID = "power_leap"
	PerkFeatherFall PerkID = "feather_fall"
	PerkHover       PerkID = "hover"
	PerkMissile     PerkID = "missile"
	PerkBlastPower  PerkID = "blast_power"
	PerkChainBlast  PerkID = "chain_blast"
	PerkComboMaster PerkID = "combo_master"
	PerkComboKeeper PerkID = "combo_keeper"
	PerkExtraHeart  PerkID = "extra_heart"
	PerkShield      PerkID = "shield"
	PerkLongStar    PerkID = "long_star"
	PerkKitten      PerkID = "kitten"
	PerkNineLives   PerkID = "nine_lives"
)

// PerkDefinition is plain, shared, read-only perk data.
type PerkDefinition struct {
	ID          PerkID
	Category    Category
	Name        string
	Description string
	MaxRank     int // 0 = unlimited
}

// Perk effect magnitudes.
const (
	gravityScaleStep      = 0.08
	gravityScaleFloor     = 0.75
	missileBaseCooldown   = 180
	missileCooldownStep   = 30
	missileMinCooldown    = 40
	blastBonusStep        = 15
	comboScoreBonusStep   = 0.02
	comboWindowBonusStep  = 45
	invincibleBonusStep   = 60
	nineLivesMaxLifeBonus = 2
)

var perkPool = []PerkDefinition{
	{PerkSwiftPaws, CategoryMobility, "Swift Paws", "Run faster", 3},
	{PerkDoubleJump, CategoryMobility, "Double Jump", "+1 jump while airborne", 2},
	{PerkQuickCharge, CategoryMobility, "Quick Charge", "Full jump charge in fewer frames", 3},
	{PerkPowerLeap, CategoryMobility, "Power Leap", "Stronger full-charge and air jumps", 3},
	{PerkFeatherFall, CategoryMobility, "Feather Fall", "Lighter gravity", 3},
	{PerkHover, CategoryMobility, "Hover", "Hold while falling to float", 3},
	{PerkMissile, CategoryDestruction, "Fish Missile", "Auto-fire at the nearest cucumber", 4},
	{PerkBlastPower, CategoryDestruction, "Blast Power", "Bigger blasts, more points", 0},
	{PerkChainBlast, CategoryDestruction, "Chain Blast", "Blasts detonate nearby cucumbers", 3},
	{PerkComboMaster, CategoryDestruction, "Combo Master", "Combos multiply score faster", 5},
	{PerkComboKeeper, CategoryDestruction, "Combo Keeper", "Combos last longer", 3},
	{PerkExtraHeart, CategoryVitality, "Extra Heart", "+1 max life and a heart", 3},
	{PerkShield, CategoryVitality, "Shield", "Absorb one hit", 0},
	{PerkLongStar, CategoryVitality, "Long Star", "Power-ups last longer", 3},
	{PerkKitten, CategorySpecial, "Kitten", "A kitten grows and revives you once", 1},
	{PerkNineLives, CategorySpecial, "Nine Lives", "+2 max lives", 1},
}

// Pool returns the static perk pool. Callers must not modify it.
func Pool() []PerkDefinition {
	return perkPool
}

// LookupPerk returns the definition for id.
func LookupPerk(id PerkID) (*PerkDefinition, bool) {
	for i := range perkPool {
		if perkPool[i].ID == id {
			return &perkPool[i], true
		}
	}
	return nil, false
}

// PerkState aggregates every rank and flag accumulated during one run.
// Values only move through ApplyPerk or a fresh NewPerkState.
type PerkState struct {
	SpeedRank        int
	MaxAirJumps      int
	InvincibleBonus  int // Extra power-up frames
	MissileRank      int
	MissileCooldown  int // Ticks between missiles, 0 while no missile rank
	MaxLives         int
	ExplosionPower   int
	ExplosionBonus   int // Extra score per explosion
	ChargeRank       int
	TimeRank         int
	GravityScale     float64
	CompanionEnabled bool
	HoverRank        int
	ChainBlastRank   int
	ShieldCharges    int // Total shields ever granted
	ComboWindowBonus int
	ComboScoreBonus  float64

	Ranks map[PerkID]int
}

// NewPerkState returns the neutral perk state for a fresh run.
func NewPerkState(cfg config.NekoConfig) PerkState {
	return PerkState{
		MaxLives:     cfg.Player.MaxLives,
		GravityScale: 1,
		Ranks:        make(map[PerkID]int),
	}
}

// Rank returns how many times id has been applied this run.
func (ps *PerkState) Rank(id PerkID) int {
	return ps.Ranks[id]
}

// Available reports whether def can still be offered.
func (ps *PerkState) Available(def *PerkDefinition) bool {
	return def.MaxRank == 0 || ps.Ranks[def.ID] < def.MaxRank
}

// ApplyPerk applies one rank of id. Returns false for unknown or maxed perks.
func ApplyPerk(ps *PerkState, id PerkID) bool {
	def, ok := LookupPerk(id)
	if !ok || !ps.Available(def) {
		return false
	}

	switch id {
	case PerkSwiftPaws:
		ps.SpeedRank++
	case PerkDoubleJump:
		ps.MaxAirJumps++
	case PerkQuickCharge:
		ps.TimeRank++
	case PerkPowerLeap:
		ps.ChargeRank++
	case PerkFeatherFall:
		ps.GravityScale -= gravityScaleStep
		if ps.GravityScale < gravityScaleFloor {
			ps.GravityScale = gravityScaleFloor
		}
	case PerkHover:
		ps.HoverRank++
	case PerkMissile:
		ps.MissileRank++
		ps.MissileCooldown = missileBaseCooldown - missileCooldownStep*(ps.MissileRank-1)
		if ps.MissileCooldown < missileMinCooldown {
			ps.MissileCooldown = missileMinCooldown
		}
	case PerkBlastPower:
		ps.ExplosionPower++
		ps.ExplosionBonus += blastBonusStep
	case PerkChainBlast:
		ps.ChainBlastRank++
	case PerkComboMaster:
		ps.ComboScoreBonus += comboScoreBonusStep
	case PerkComboKeeper:
		ps.ComboWindowBonus += comboWindowBonusStep
	case PerkExtraHeart:
		ps.MaxLives++
	case PerkShield:
		ps.ShieldCharges++
	case PerkLongStar:
		ps.InvincibleBonus += invincibleBonusStep
	case PerkKitten:
		ps.CompanionEnabled = true
	case PerkNineLives:
		ps.MaxLives += nineLivesMaxLifeBonus
	default:
		return false
	}

	ps.Ranks[id]++
	return true
}

// FormatRanks renders ranks as "id:rank" pairs sorted by id.
func FormatRanks(ranks map[PerkID]int) string {
	ids := make([]string, 0, len(ranks))
	for id := range ranks {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s:%d", id, ranks[PerkID(id)]))
	}
	return strings.Join(parts, ",")
}
