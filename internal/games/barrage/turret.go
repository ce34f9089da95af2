package barrage

import (
	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// BarrelChar is the rune used to draw the turret barrel.
const BarrelChar = '▪'

// Turret owns the aim state of one tank: an angle in degrees inside the
// configured arc and an angular speed that is non-zero only while an aim
// key is held. Only the active tank's turret receives Update calls, so an
// inactive turret keeps its aim between turns.
type Turret struct {
	cfg   config.TurretConfig
	base  core.Vec2 // barrel pivot in playfield cells
	color core.Color
	angle int // degrees, always within [cfg.AngleMin, cfg.AngleMax]
	speed int // one of {-cfg.SpeedStep, 0, +cfg.SpeedStep}
}

// NewTurret creates a turret pivoting at base, aimed at the configured
// starting angle.
func NewTurret(cfg config.TurretConfig, base core.Vec2, color core.Color) *Turret {
	return &Turret{
		cfg:   cfg,
		base:  base,
		color: color,
		angle: cfg.AngleStart,
	}
}

// HandlePress sets the angular speed for aim actions. Other actions are
// ignored here.
func (t *Turret) HandlePress(a core.Action) {
	switch a {
	case core.ActionAimLeft:
		t.speed = t.cfg.SpeedStep
	case core.ActionAimRight:
		t.speed = -t.cfg.SpeedStep
	}
}

// HandleRelease clears the angular speed for the matching aim action.
// Fire also clears it, so a turn never hands off with a drifting turret.
func (t *Turret) HandleRelease(a core.Action) {
	switch a {
	case core.ActionAimLeft, core.ActionAimRight, core.ActionFire:
		t.speed = 0
	}
}

// Update applies the angular speed and clamps the angle into the arc.
// No-op while the speed is zero. Called once per tick for the active
// turret only.
func (t *Turret) Update() {
	if t.speed == 0 {
		return
	}
	t.angle = core.Clamp(t.angle+t.speed, t.cfg.AngleMin, t.cfg.AngleMax)
}

// Angle returns the current aim angle in degrees.
func (t *Turret) Angle() int {
	return t.angle
}

// Speed returns the current angular speed in degrees per tick.
func (t *Turret) Speed() int {
	return t.speed
}

// Tip returns the barrel end point: a barrel-length vector rotated by the
// aim angle. Angles are measured from the horizontal with Y up, so the
// rotated Y is negated for screen coordinates.
func (t *Turret) Tip() core.Vec2 {
	arm := core.Vec2{X: float64(t.cfg.Length)}.RotateDegrees(float64(t.angle))
	return core.Vec2{X: t.base.X + arm.X, Y: t.base.Y - arm.Y}
}

// Draw renders the barrel as a line from the pivot to the tip.
func (t *Turret) Draw(dst *core.Screen) {
	tip := t.Tip()
	dst.DrawLine(
		int(t.base.X), int(t.base.Y),
		int(tip.X), int(tip.Y),
		BarrelChar, t.color,
	)
}
