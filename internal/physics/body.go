package physics

import "github.com/vovakirdan/tui-barrage/internal/core"

// BodyType distinguishes immovable scenery from simulated bodies.
type BodyType int

const (
	// Static bodies never move and are only collision targets (ground, tanks).
	Static BodyType = iota
	// Dynamic bodies are integrated every step (projectiles).
	Dynamic
)

// Category is a collision classification tag ("ground", "bullet", "tank").
// Handlers are registered per category pair.
type Category string

// Body is an axis-aligned box registered with the engine.
// Pos is the box center in playfield cells; Size its width and height.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Size     core.Vec2
	Type     BodyType
	Category Category
	Mass     float64 // dynamic bodies only; defaults to 1 when zero
	Friction float64 // surface friction, carried for contact resolution
	Damping  float64 // per-second velocity retention; 0 = engine default
}

// Bounds returns the body's current AABB extents.
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	hw := b.Size.X / 2
	hh := b.Size.Y / 2
	return b.Pos.X - hw, b.Pos.Y - hh, b.Pos.X + hw, b.Pos.Y + hh
}

// Overlaps reports whether two bodies' AABBs intersect.
func (b *Body) Overlaps(o *Body) bool {
	aMinX, aMinY, aMaxX, aMaxY := b.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := o.Bounds()
	if aMinX >= bMaxX || bMinX >= aMaxX {
		return false
	}
	if aMinY >= bMaxY || bMinY >= aMaxY {
		return false
	}
	return true
}

func (b *Body) mass() float64 {
	if b.Mass <= 0 {
		return 1
	}
	return b.Mass
}
