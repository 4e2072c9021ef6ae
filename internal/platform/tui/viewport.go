package tui

import (
	"math"

	"github.com/vovakirdan/neko-runner/internal/core"
)

// hudRows is the number of screen rows above the play field.
const hudRows = 2

// Viewport maps kernel field units onto terminal cells. The play field
// fills the screen below the HUD rows.
type Viewport struct {
	cols, rows     int
	fieldW, fieldH float64
}

// NewViewport creates a mapping for a cols x rows screen.
func NewViewport(cols, rows int, fieldW, fieldH float64) *Viewport {
	v := &Viewport{fieldW: fieldW, fieldH: fieldH}
	v.Resize(cols, rows)
	return v
}

// Resize updates the screen size.
func (v *Viewport) Resize(cols, rows int) {
	v.cols = core.Max(cols, 1)
	v.rows = core.Max(rows, hudRows+1)
}

func (v *Viewport) fieldRows() int {
	return v.rows - hudRows
}

func (v *Viewport) scaleX() float64 {
	return float64(v.cols) / v.fieldW
}

func (v *Viewport) scaleY() float64 {
	return float64(v.fieldRows()) / v.fieldH
}

// ToCell converts a field point to a screen cell.
func (v *Viewport) ToCell(x, y float64) (int, int) {
	col := int(math.Floor(x * v.scaleX()))
	row := int(math.Floor(y*v.scaleY())) + hudRows
	return col, row
}

// ToField converts a screen cell to the field point at its center.
func (v *Viewport) ToField(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) / v.scaleX()
	y := (float64(row-hudRows) + 0.5) / v.scaleY()
	return x, y
}

// RectToCells converts a field rectangle to cells, at least one cell big.
func (v *Viewport) RectToCells(r core.RectF) core.Rect {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1 := int(math.Ceil(r.Right() * v.scaleX()))
	y1 := int(math.Ceil(r.Bottom()*v.scaleY())) + hudRows
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
