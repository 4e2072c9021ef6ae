package neko

import "github.com/vovakirdan/neko-runner/internal/core"

// Perk card geometry in field units.
const (
	cardWidth  = 260
	cardHeight = 200
	cardGap    = 30
	cardTop    = 170
)

// Choice is a pending perk offer and where it is displayed.
type Choice struct {
	Perk   PerkDefinition
	Region core.RectF
}

// layoutChoices centers n cards in a row across the field.
func layoutChoices(ids []PerkID, fieldW float64) []Choice {
	n := len(ids)
	if n == 0 {
		return nil
	}
	total := float64(n)*cardWidth + float64(n-1)*cardGap
	x := (fieldW - total) / 2

	choices := make([]Choice, 0, n)
	for _, id := range ids {
		def, ok := LookupPerk(id)
		if !ok {
			continue
		}
		choices = append(choices, Choice{
			Perk:   *def,
			Region: core.NewRectF(x, cardTop, cardWidth, cardHeight),
		})
		x += cardWidth + cardGap
	}
	return choices
}

// choiceAt returns the index of the card containing (x, y), or -1.
func choiceAt(choices []Choice, x, y float64) int {
	for i, c := range choices {
		if c.Region.Contains(x, y) {
			return i
		}
	}
	return -1
}
