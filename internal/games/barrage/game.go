// Package barrage implements a turn-based artillery game: tanks take turns
// aiming a turret and firing a gravity-driven shell across a flat terrain.
// The playfield, physics parameters and tank roster come from YAML config;
// the platform layer drives the game through the registry interface.
package barrage

import (
	"fmt"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/physics"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

// Out-of-bounds margin in cells before a shell is culled.
const cullMargin = 10.0

var (
	configPath string
	tankCount  int
)

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetTankCount overrides the configured number of tanks for the next
// Reset. Zero keeps the config value.
func SetTankCount(n int) {
	tankCount = n
}

// Game composes the tank roster, the turn order, the physics engine and
// the live projectile list, and owns the per-tick contract:
// input -> active tank update -> physics step -> render.
type Game struct {
	conf        config.Config
	width       int
	height      int
	groundTop   int // first row occupied by the ground
	dt          float64
	engine      *physics.Engine
	ground      *physics.Body
	tanks       []*Tank
	turns       *TurnOrder
	projectiles []*Projectile
	shots       int
	paused      bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "barrage"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barrage"
}

// Reset loads configuration and rebuilds the whole match: tanks at evenly
// spaced positions, the ground body, the physics engine and the collision
// wiring. Precondition violations are returned, never deferred.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if tankCount > 0 {
		conf.Tanks.Count = tankCount
	}
	return g.setup(cfg, conf)
}

func (g *Game) setup(cfg core.RuntimeConfig, conf config.Config) error {
	if err := validate(conf); err != nil {
		return err
	}
	if len(conf.Tanks.Colors) == 0 {
		conf.Tanks.Colors = []string{"default"}
	}

	g.conf = conf
	g.width = cfg.ScreenW
	g.height = cfg.ScreenH
	if g.width <= 0 {
		g.width = conf.Window.Width
	}
	if g.height <= 0 {
		g.height = conf.Window.Height
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(tickRate)

	g.projectiles = nil
	g.shots = 0
	g.paused = false

	// The ground spans the full width of the lower third.
	groundH := g.height / 3
	g.groundTop = g.height - groundH

	g.engine = physics.New(
		core.Vec2{X: conf.Physics.GravityX, Y: conf.Physics.GravityY},
		conf.Physics.Damping,
	)
	g.engine.RegisterCategory(CategoryGround)
	g.engine.RegisterCategory(CategoryBullet)
	g.engine.RegisterCategory(CategoryTank)

	if err := g.engine.OnCollision(CategoryBullet, CategoryGround, func(bullet, _ *physics.Body) {
		g.detonate(bullet)
	}); err != nil {
		return err
	}

	g.ground = &physics.Body{
		Pos:      core.Vec2{X: float64(g.width) / 2, Y: float64(g.groundTop) + float64(groundH)/2},
		Size:     core.Vec2{X: float64(g.width), Y: float64(groundH)},
		Type:     physics.Static,
		Category: CategoryGround,
	}
	if err := g.engine.AddBody(g.ground); err != nil {
		return err
	}

	if err := g.createTanks(conf); err != nil {
		return err
	}

	turns, err := NewTurnOrder(g.tanks)
	if err != nil {
		return err
	}
	g.turns = turns
	return nil
}

// createTanks places N tanks at width*n/(N+1) on top of the ground, with
// hull colors assigned circularly from the configured palette.
func (g *Game) createTanks(conf config.Config) error {
	n := conf.Tanks.Count
	g.tanks = make([]*Tank, 0, n)
	for i := 1; i <= n; i++ {
		pos := core.Vec2{
			X: float64(g.width) * float64(i) / float64(n+1),
			Y: float64(g.groundTop),
		}
		color := core.ParseColor(conf.Tanks.Colors[(i-1)%len(conf.Tanks.Colors)])
		tank := NewTank(fmt.Sprintf("Player %d", i), pos, color, conf.Turret, conf.Tanks)
		g.tanks = append(g.tanks, tank)

		body := &physics.Body{
			Pos:      core.Vec2{X: pos.X, Y: pos.Y - float64(HullHeight)/2},
			Size:     core.Vec2{X: float64(conf.Tanks.Size), Y: float64(HullHeight)},
			Type:     physics.Static,
			Category: CategoryTank,
		}
		if err := g.engine.AddBody(body); err != nil {
			return err
		}
	}
	return nil
}

func validate(conf config.Config) error {
	if conf.Tanks.Count < 1 {
		return ErrEmptyTurnOrder
	}
	t := conf.Turret
	if t.AngleMin > t.AngleMax || t.AngleStart < t.AngleMin || t.AngleStart > t.AngleMax {
		return fmt.Errorf("%w: arc [%d, %d], start %d", ErrInvalidAngle, t.AngleMin, t.AngleMax, t.AngleStart)
	}
	if conf.Tanks.Power <= 0 || conf.Tanks.Weapon == "" {
		return ErrMissingLoadout
	}
	return nil
}

// Step advances the game by one tick. Events are routed in order to the
// active tank; a fire release is forwarded to the still-active tank first,
// then spawns the shell, then passes control to the next tank.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events {
		if ev.Action == core.ActionPause && ev.Pressed {
			g.paused = !g.paused
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Events {
		switch {
		case ev.Action == core.ActionPause || ev.Action == core.ActionRestart:
			// Platform-level actions, not tank input.
		case ev.Pressed:
			g.turns.Current().HandlePress(ev.Action)
		default:
			g.turns.Current().HandleRelease(ev.Action)
			if ev.Action == core.ActionFire {
				if err := g.fire(); err != nil {
					return core.StepResult{State: g.State(), Err: err}
				}
				g.turns.Advance()
			}
		}
	}

	// Only the active tank updates; inactive turrets keep their aim.
	g.turns.Current().Update()

	g.engine.Step(g.dt)
	g.cullProjectiles()

	return core.StepResult{State: g.State()}
}

// fire spawns a shell at the active turret's tip and launches it with the
// tank's power.
func (g *Game) fire() error {
	tank := g.turns.Current()
	p := NewProjectile(tank.TurretTip(), g.conf.Projectile)
	if err := g.AddProjectile(p, tank.Power()); err != nil {
		return err
	}
	g.shots++
	return nil
}

// AddProjectile registers a shell with the render list and the physics
// engine exactly once, then applies its one-time launch impulse along the
// horizontal axis.
func (g *Game) AddProjectile(p *Projectile, power float64) error {
	if err := g.engine.AddBody(p.Body()); err != nil {
		return err
	}
	g.projectiles = append(g.projectiles, p)
	g.engine.ApplyImpulse(p.Body(), core.Vec2{X: power})
	return nil
}

// detonate handles a bullet/ground collision: the shell detonates and is
// removed from both render and physics tracking.
func (g *Game) detonate(body *physics.Body) {
	for i, p := range g.projectiles {
		if p.Body() == body {
			p.Detonate()
			g.projectiles = append(g.projectiles[:i], g.projectiles[i+1:]...)
			break
		}
	}
	g.engine.RemoveBody(body)
}

// cullProjectiles removes shells that left the playfield without hitting
// the ground. Ground collision remains the primary removal path.
func (g *Game) cullProjectiles() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		pos := p.Body().Pos
		if pos.X < -cullMargin || pos.X > float64(g.width)+cullMargin || pos.Y > float64(g.height)+cullMargin {
			g.engine.RemoveBody(p.Body())
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
}

// ActiveTank returns the tank currently permitted to aim and fire.
func (g *Game) ActiveTank() *Tank {
	return g.turns.Current()
}

// Render draws the ground, every tank, the live shells and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundRect := core.NewRect(0, g.groundTop, dst.Width(), dst.Height()-g.groundTop)
	dst.DrawRectColored(groundRect, '█', core.ColorGreen)

	for _, tank := range g.tanks {
		tank.Draw(dst)
	}

	for _, p := range g.projectiles {
		p.Draw(dst)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state. The score is the total number of
// shots fired this session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.shots,
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("barrage", func() registry.Game {
		return New()
	})
}
