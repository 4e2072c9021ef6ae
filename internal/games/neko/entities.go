package neko

import (
	"math"

	"github.com/vovakirdan/neko-runner/internal/core"
)

// Obstacle is a cucumber the runner must clear or destroy.
type Obstacle struct {
	X, Y float64
	W, H float64
	Hit  bool // Dealt or absorbed damage, or exploded; removed at the next prune
}

// Rect returns the collision box.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Item is a collectible: a heart (cat can) or an invincibility power-up.
type Item struct {
	X, Y  float64
	W, H  float64
	Taken bool
}

// Rect returns the collision box.
func (it *Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, it.W, it.H)
}

// Effect is a cosmetic particle.
type Effect struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
	Color   core.Color
}

// particleGravity pulls particles down a little every tick.
const particleGravity = 0.2

// Entities owns every dynamic collection of a run.
type Entities struct {
	Obstacles []Obstacle
	Hearts    []Item
	PowerUps  []Item
	Effects   []Effect
}

// NewEntities creates empty collections with room for a busy screen.
func NewEntities() *Entities {
	return &Entities{
		Obstacles: make([]Obstacle, 0, 16),
		Hearts:    make([]Item, 0, 4),
		PowerUps:  make([]Item, 0, 4),
		Effects:   make([]Effect, 0, 64),
	}
}

// Reset empties every collection, keeping capacity.
func (e *Entities) Reset() {
	e.Obstacles = e.Obstacles[:0]
	e.Hearts = e.Hearts[:0]
	e.PowerUps = e.PowerUps[:0]
	e.Effects = e.Effects[:0]
}

// ClearHazards removes obstacles and pickups but keeps particles alive.
func (e *Entities) ClearHazards() {
	e.Obstacles = e.Obstacles[:0]
	e.Hearts = e.Hearts[:0]
	e.PowerUps = e.PowerUps[:0]
}

// AddObstacle appends an obstacle.
func (e *Entities) AddObstacle(o Obstacle) {
	e.Obstacles = append(e.Obstacles, o)
}

// AddHeart appends a heart pickup.
func (e *Entities) AddHeart(it Item) {
	e.Hearts = append(e.Hearts, it)
}

// AddPowerUp appends a power-up pickup.
func (e *Entities) AddPowerUp(it Item) {
	e.PowerUps = append(e.PowerUps, it)
}

// Burst spawns count particles radiating from (x, y).
func (e *Entities) Burst(rng *Random, x, y float64, count, life int, color core.Color) {
	for i := 0; i < count; i++ {
		angle := rng.Range(0, 2*math.Pi)
		speed := rng.Range(1.5, 5)
		e.Effects = append(e.Effects, Effect{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 1.5,
			Life:    life,
			MaxLife: life,
			Size:    rng.Range(3, 7),
			Color:   color,
		})
	}
}

// Scroll moves every obstacle and pickup left by dx.
func (e *Entities) Scroll(dx float64) {
	for i := range e.Obstacles {
		e.Obstacles[i].X -= dx
	}
	for i := range e.Hearts {
		e.Hearts[i].X -= dx
	}
	for i := range e.PowerUps {
		e.PowerUps[i].X -= dx
	}
}

// UpdateEffects advances and ages particles.
func (e *Entities) UpdateEffects() {
	for i := range e.Effects {
		p := &e.Effects[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
	}
}

// Prune removes consumed entities, entities whose right edge passed
// leftBound, and expired particles.
func (e *Entities) Prune(leftBound float64) {
	obstacles := e.Obstacles[:0]
	for _, o := range e.Obstacles {
		if !o.Hit && o.X+o.W > leftBound {
			obstacles = append(obstacles, o)
		}
	}
	e.Obstacles = obstacles

	e.Hearts = pruneItems(e.Hearts, leftBound)
	e.PowerUps = pruneItems(e.PowerUps, leftBound)

	effects := e.Effects[:0]
	for _, p := range e.Effects {
		if p.Life > 0 {
			effects = append(effects, p)
		}
	}
	e.Effects = effects
}

func pruneItems(items []Item, leftBound float64) []Item {
	kept := items[:0]
	for _, it := range items {
		if !it.Taken && it.X+it.W > leftBound {
			kept = append(kept, it)
		}
	}
	return kept
}
