package neko

// Snapshot is a read-only copy of everything a renderer needs. Slices and
// maps are copied, so holding a Snapshot never aliases kernel state.
type Snapshot struct {
	Phase Phase
	Tick  int

	FieldW, FieldH float64
	GroundY        float64

	Player      Player
	ChargeRatio float64
	Speed       float64

	Obstacles []Obstacle
	Hearts    []Item
	PowerUps  []Item
	Effects   []Effect

	Score      int
	Best       int
	Lives      int
	MaxLives   int
	Level      int
	XP         float64
	Threshold  float64
	Rerolls    int
	Combo      int
	ComboTimer int
	Multiplier float64
	Shields    int
	Invincible int
	Flash      int

	Companion        Companion
	CompanionEnabled bool
	CompanionCap     int

	Ranks   map[PerkID]int
	Choices []Choice
}

// Snapshot copies the current run state.
func (g *Game) Snapshot() Snapshot {
	ranks := make(map[PerkID]int, len(g.perks.Ranks))
	for id, r := range g.perks.Ranks {
		ranks[id] = r
	}

	return Snapshot{
		Phase:            g.phase,
		Tick:             g.tickCount,
		FieldW:           g.cfg.Field.Width,
		FieldH:           g.cfg.Field.Height,
		GroundY:          g.cfg.GroundY(),
		Player:           g.player,
		ChargeRatio:      g.player.ChargeRatio(ChargeLimit(g.cfg.Jump, &g.perks)),
		Speed:            g.ScrollSpeed(),
		Obstacles:        append([]Obstacle(nil), g.entities.Obstacles...),
		Hearts:           append([]Item(nil), g.entities.Hearts...),
		PowerUps:         append([]Item(nil), g.entities.PowerUps...),
		Effects:          append([]Effect(nil), g.entities.Effects...),
		Score:            g.score,
		Best:             g.best,
		Lives:            g.lives,
		MaxLives:         g.perks.MaxLives,
		Level:            g.prog.Level,
		XP:               g.prog.XP,
		Threshold:        g.prog.Threshold,
		Rerolls:          g.prog.Rerolls,
		Combo:            g.combo.Count,
		ComboTimer:       g.combo.Timer,
		Multiplier:       Multiplier(g.combo.Count, g.cfg.Combo, g.perks.ComboScoreBonus),
		Shields:          g.shields,
		Invincible:       g.invincible,
		Flash:            g.flash,
		Companion:        g.companion,
		CompanionEnabled: g.perks.CompanionEnabled,
		CompanionCap:     g.cfg.Companion.GrowthCap,
		Ranks:            ranks,
		Choices:          append([]Choice(nil), g.choices...),
	}
}

// ChoiceAt returns the index of the perk card at field point (x, y), or -1.
func (s *Snapshot) ChoiceAt(x, y float64) int {
	return choiceAt(s.Choices, x, y)
}
