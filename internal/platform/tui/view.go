package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neko-runner/internal/core"
	"github.com/vovakirdan/neko-runner/internal/games/neko"
)

// Visual characters for rendering.
const (
	CatBody      = '█'
	CatEar       = '^'
	CucumberChar = '▓'
	HeartChar    = '♥'
	EmptyHeart   = '♡'
	PowerUpChar  = '★'
	KittenChar   = 'ω'
	GroundChar   = '═'
	ParticleChar = '•'
)

// invincibleColors cycles while the cat is invincible.
var invincibleColors = []core.Color{core.ColorBrightYellow, core.ColorPink, core.ColorBrightCyan, core.ColorOrange}

// DrawSnapshot renders one kernel snapshot onto dst.
func DrawSnapshot(dst *core.Screen, v *Viewport, s neko.Snapshot, paused bool) {
	dst.Clear()

	if s.Phase == neko.PhaseTitle {
		drawTitle(dst, s)
		return
	}

	drawWorld(dst, v, s)
	drawHUD(dst, s)

	switch s.Phase {
	case neko.PhaseLevelUp:
		drawChoices(dst, v, s)
	case neko.PhaseGameOver:
		drawGameOver(dst, s)
	case neko.PhasePlaying:
		if paused {
			drawBanner(dst, dst.Height()/2, "PAUSED", "P to resume", core.ColorBrightYellow)
		}
	}
}

func drawTitle(dst *core.Screen, s neko.Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "/\\_/\\", core.ColorWhite)
	dst.DrawTextCentered(mid-3, "( o.o )", core.ColorWhite)
	dst.DrawTextCentered(mid-1, "N E K O   R U N N E R", core.ColorBrightYellow)
	dst.DrawTextCentered(mid+1, "Hold SPACE to charge a jump, release to leap", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Smash cucumbers while invincible, level up, stack perks", core.ColorGray)
	dst.DrawTextCentered(mid+4, "Press SPACE or ENTER to start", core.ColorBrightCyan)
	if s.Best > 0 {
		dst.DrawTextCentered(mid+6, fmt.Sprintf("Best: %d", s.Best), core.ColorYellow)
	}
}

func drawWorld(dst *core.Screen, v *Viewport, s neko.Snapshot) {
	_, groundRow := v.ToCell(0, s.GroundY+s.Player.H)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		dst.DrawRect(v.RectToCells(o.Rect()), CucumberChar, core.ColorGreen)
	}
	for _, h := range s.Hearts {
		drawItem(dst, v, h, HeartChar, core.ColorRed)
	}
	for _, p := range s.PowerUps {
		drawItem(dst, v, p, PowerUpChar, core.ColorBrightYellow)
	}

	if s.Companion.Active {
		col, row := v.ToCell(s.Companion.X, s.Companion.Y)
		color := core.ColorPink
		if s.Companion.Grown {
			color = core.ColorMagenta
		}
		dst.SetColored(col, row, KittenChar, color)
	}

	drawCat(dst, v, s)

	for _, p := range s.Effects {
		col, row := v.ToCell(p.X, p.Y)
		dst.SetColored(col, row, ParticleChar, p.Color)
	}
}

func drawItem(dst *core.Screen, v *Viewport, it neko.Item, r rune, c core.Color) {
	x, y := it.Rect().Center()
	col, row := v.ToCell(x, y)
	dst.SetColored(col, row, r, c)
}

func drawCat(dst *core.Screen, v *Viewport, s neko.Snapshot) {
	color := core.ColorWhite
	switch {
	case s.Invincible > 0:
		color = invincibleColors[(s.Tick/4)%len(invincibleColors)]
	case s.Flash > 0:
		color = core.ColorGray
	}

	body := v.RectToCells(s.Player.Rect())
	dst.DrawRect(body, CatBody, color)
	if body.Y > hudRows {
		dst.SetColored(body.X, body.Y-1, CatEar, color)
		dst.SetColored(body.Right()-1, body.Y-1, CatEar, color)
	}

	if s.Player.Charging {
		drawChargeBar(dst, body, s.ChargeRatio)
	}
}

// drawChargeBar draws the charge meter under the cat's feet.
func drawChargeBar(dst *core.Screen, body core.Rect, ratio float64) {
	const width = 6
	filled := int(ratio*width + 0.5)
	bar := strings.Repeat("=", filled) + strings.Repeat("-", width-filled)
	color := core.ColorCyan
	if filled == width {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(body.X, body.Bottom()+1, "["+bar+"]", color)
}

func drawHUD(dst *core.Screen, s neko.Snapshot) {
	lives := make([]rune, 0, s.MaxLives)
	for i := 0; i < s.MaxLives; i++ {
		if i < s.Lives {
			lives = append(lives, HeartChar)
		} else {
			lives = append(lives, EmptyHeart)
		}
	}
	dst.DrawTextColored(1, 0, string(lives), core.ColorRed)

	x := s.MaxLives + 3
	left := fmt.Sprintf("Score %d  Best %d  Lv %d  XP %d/%d", s.Score, s.Best, s.Level, int(s.XP), int(s.Threshold))
	dst.DrawTextColored(x, 0, left, core.ColorWhite)

	var parts []string
	if s.Combo > 0 {
		parts = append(parts, fmt.Sprintf("Combo %d x%.2f", s.Combo, s.Multiplier))
	}
	if s.Shields > 0 {
		parts = append(parts, fmt.Sprintf("Shield %d", s.Shields))
	}
	if s.Invincible > 0 {
		parts = append(parts, fmt.Sprintf("STAR %d", s.Invincible))
	}
	if s.CompanionEnabled {
		state := "away"
		if s.Companion.Active {
			state = fmt.Sprintf("%d/%d", s.Companion.Growth, s.CompanionCap)
		}
		parts = append(parts, "Kitten "+state)
	}
	dst.DrawTextColored(1, 1, strings.Join(parts, "  "), core.ColorBrightCyan)
}

func drawChoices(dst *core.Screen, v *Viewport, s neko.Snapshot) {
	drawBanner(dst, hudRows+1, fmt.Sprintf("LEVEL %d!", s.Level), "Pick a perk: 1-3 or click", core.ColorBrightYellow)

	for i, c := range s.Choices {
		r := v.RectToCells(c.Region)
		dst.DrawRect(r, ' ', core.ColorDefault)
		dst.DrawBox(r, categoryColor(c.Perk.Category))

		inner := r.W - 2
		lines := []string{
			fmt.Sprintf("[%d] %s", i+1, c.Perk.Name),
			c.Perk.Category.String(),
		}
		if rank := s.Ranks[c.Perk.ID]; rank > 0 {
			lines = append(lines, fmt.Sprintf("Rank %d -> %d", rank, rank+1))
		}
		lines = append(lines, wrap(c.Perk.Description, inner)...)

		for j, line := range lines {
			if j >= r.H-2 {
				break
			}
			dst.DrawTextColored(r.X+1, r.Y+1+j, truncate(line, inner), core.ColorWhite)
		}
	}

	if s.Rerolls > 0 {
		dst.DrawTextCentered(dst.Height()-2, fmt.Sprintf("R: reroll (%d left)", s.Rerolls), core.ColorGray)
	}
}

func drawGameOver(dst *core.Screen, s neko.Snapshot) {
	mid := dst.Height() / 2
	drawBanner(dst, mid-1, "GAME OVER", fmt.Sprintf("Score %d  Best %d  Level %d", s.Score, s.Best, s.Level), core.ColorBrightRed)
	dst.DrawTextCentered(mid+2, "Press SPACE to continue", core.ColorGray)
}

func drawBanner(dst *core.Screen, y int, title, subtitle string, c core.Color) {
	dst.DrawTextCentered(y, title, c)
	dst.DrawTextCentered(y+1, subtitle, core.ColorWhite)
}

func categoryColor(c neko.Category) core.Color {
	switch c {
	case neko.CategoryMobility:
		return core.ColorCyan
	case neko.CategoryDestruction:
		return core.ColorOrange
	case neko.CategoryVitality:
		return core.ColorRed
	default:
		return core.ColorMagenta
	}
}

// wrap splits text into lines no wider than width.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
