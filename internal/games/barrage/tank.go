package barrage

import (
	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// HullHeight is the tank dome height in rows.
const HullHeight = 2

// Actor handles routed input events and per-tick updates. A Tank forwards
// to its Turret; the Game routes to the active Tank.
type Actor interface {
	HandlePress(a core.Action)
	HandleRelease(a core.Action)
	Update()
}

var (
	_ Actor = (*Turret)(nil)
	_ Actor = (*Tank)(nil)
)

// Tank is one player: a named, fixed-position hull owning exactly one
// Turret with the same lifetime. Tanks do not move and are not destructible.
type Tank struct {
	name   string
	pos    core.Vec2 // hull base center, on top of the ground
	size   int       // hull width in cells
	color  core.Color
	power  float64 // launch impulse magnitude, read by the HUD
	weapon string  // active weapon name, read by the HUD
	turret *Turret
}

// NewTank creates a tank at the given hull base position. The turret pivots
// at the top of the hull.
func NewTank(name string, pos core.Vec2, color core.Color, turretCfg config.TurretConfig, tanksCfg config.TanksConfig) *Tank {
	base := core.Vec2{X: pos.X, Y: pos.Y - HullHeight}
	return &Tank{
		name:   name,
		pos:    pos,
		size:   tanksCfg.Size,
		color:  color,
		power:  tanksCfg.Power,
		weapon: tanksCfg.Weapon,
		turret: NewTurret(turretCfg, base, color),
	}
}

// HandlePress forwards a press event to the turret.
func (t *Tank) HandlePress(a core.Action) {
	t.turret.HandlePress(a)
}

// HandleRelease forwards a release event to the turret.
func (t *Tank) HandleRelease(a core.Action) {
	t.turret.HandleRelease(a)
}

// Update forwards the per-tick update to the turret.
func (t *Tank) Update() {
	t.turret.Update()
}

// Name returns the tank's display name.
func (t *Tank) Name() string {
	return t.name
}

// Position returns the hull base center.
func (t *Tank) Position() core.Vec2 {
	return t.pos
}

// Color returns the hull color.
func (t *Tank) Color() core.Color {
	return t.color
}

// TurretAngle returns the turret aim angle in degrees.
func (t *Tank) TurretAngle() int {
	return t.turret.Angle()
}

// TurretTip returns the barrel end point, where projectiles spawn.
func (t *Tank) TurretTip() core.Vec2 {
	return t.turret.Tip()
}

// Power returns the launch impulse magnitude.
func (t *Tank) Power() float64 {
	return t.power
}

// Weapon returns the active weapon name.
func (t *Tank) Weapon() string {
	return t.weapon
}

// Draw renders the hull dome and the turret barrel.
func (t *Tank) Draw(dst *core.Screen) {
	baseX := int(t.pos.X)
	baseY := int(t.pos.Y)

	// Dome: rows narrow toward the top.
	half := t.size / 2
	for dy := 0; dy < HullHeight; dy++ {
		w := half - dy
		if w < 0 {
			w = 0
		}
		for dx := -w; dx <= w; dx++ {
			dst.SetCell(baseX+dx, baseY-1-dy, '█', t.color)
		}
	}

	t.turret.Draw(dst)
}
