package barrage

import (
	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/physics"
)

// Collision categories registered with the physics engine at setup.
const (
	CategoryGround physics.Category = "ground"
	CategoryBullet physics.Category = "bullet"
	CategoryTank   physics.Category = "tank"
)

// ShellChar is the rune used to draw a projectile in flight.
const ShellChar = '●'

// Projectile is one fired shell: a dynamic physics body plus its render
// state. Once registered it is simulated every step until it detonates on
// the ground or leaves the playfield.
type Projectile struct {
	body      *physics.Body
	color     core.Color
	detonated bool
}

// NewProjectile creates a shell at the given spawn point (the firing
// turret's tip), not yet registered with the engine.
func NewProjectile(pos core.Vec2, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		body: &physics.Body{
			Pos:      pos,
			Size:     core.Vec2{X: 1, Y: 1},
			Type:     physics.Dynamic,
			Category: CategoryBullet,
			Mass:     cfg.Mass,
			Friction: cfg.Friction,
			Damping:  cfg.Damping,
		},
		color: core.ColorBrightWhite,
	}
}

// Body returns the shell's physics body.
func (p *Projectile) Body() *physics.Body {
	return p.body
}

// Detonate marks the shell as detonated. The terminal event for a shell;
// removal from simulation and rendering follows immediately.
func (p *Projectile) Detonate() {
	p.detonated = true
}

// Detonated reports whether the shell has detonated.
func (p *Projectile) Detonated() bool {
	return p.detonated
}

// Draw renders the shell at its current body position.
func (p *Projectile) Draw(dst *core.Screen) {
	dst.SetCell(int(p.body.Pos.X), int(p.body.Pos.Y), ShellChar, p.color)
}
