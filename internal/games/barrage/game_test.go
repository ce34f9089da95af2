package barrage

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// newTestGame builds a game directly through setup so tests never touch
// the on-disk config search chain.
func newTestGame(t *testing.T, conf config.Config) *Game {
	t.Helper()
	g := New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	if err := g.setup(cfg, conf); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return g
}

func pressFrame(a core.Action) core.InputFrame {
	var f core.InputFrame
	f.Press(a)
	return f
}

func fireFrame() core.InputFrame {
	var f core.InputFrame
	f.Press(core.ActionFire)
	f.Release(core.ActionFire)
	return f
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "no tanks",
			mutate:  func(c *config.Config) { c.Tanks.Count = 0 },
			wantErr: ErrEmptyTurnOrder,
		},
		{
			name:    "start angle outside arc",
			mutate:  func(c *config.Config) { c.Turret.AngleStart = 200 },
			wantErr: ErrInvalidAngle,
		},
		{
			name:    "inverted arc",
			mutate:  func(c *config.Config) { c.Turret.AngleMin, c.Turret.AngleMax = 180, 0 },
			wantErr: ErrInvalidAngle,
		},
		{
			name:    "no power",
			mutate:  func(c *config.Config) { c.Tanks.Power = 0 },
			wantErr: ErrMissingLoadout,
		},
		{
			name:    "no weapon",
			mutate:  func(c *config.Config) { c.Tanks.Weapon = "" },
			wantErr: ErrMissingLoadout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := config.Default()
			tt.mutate(&conf)

			g := New()
			err := g.setup(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, conf)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("setup error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetupPlacesTanksEvenly(t *testing.T) {
	conf := config.Default()
	conf.Tanks.Count = 3
	g := newTestGame(t, conf)

	if len(g.tanks) != 3 {
		t.Fatalf("got %d tanks, expected 3", len(g.tanks))
	}

	// Three tanks on an 80-wide field sit at 20, 40 and 60, on top of the
	// lower-third ground line.
	expectedX := []float64{20, 40, 60}
	for i, tank := range g.tanks {
		pos := tank.Position()
		if pos.X != expectedX[i] {
			t.Errorf("tank %d at x=%.1f, expected %.1f", i, pos.X, expectedX[i])
		}
		if pos.Y != float64(g.groundTop) {
			t.Errorf("tank %d at y=%.1f, expected ground line %d", i, pos.Y, g.groundTop)
		}
	}

	if g.groundTop != 16 {
		t.Errorf("ground top = %d, expected 16 on a 24-row field", g.groundTop)
	}
}

func TestStepRoutesInputToActiveTankOnly(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	g.Step(pressFrame(core.ActionAimLeft))
	for i := 0; i < 4; i++ {
		g.Step(core.InputFrame{})
	}

	start := conf.Turret.AngleStart
	step := conf.Turret.SpeedStep
	if got := g.tanks[0].TurretAngle(); got != start+5*step {
		t.Errorf("active tank angle = %d°, expected %d°", got, start+5*step)
	}
	if got := g.tanks[1].TurretAngle(); got != start {
		t.Errorf("inactive tank angle = %d°, expected untouched %d°", got, start)
	}
}

func TestFireSpawnsShellAndAdvancesTurn(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	before := g.engine.BodyCount()
	res := g.Step(fireFrame())
	if res.Err != nil {
		t.Fatalf("Step: %v", res.Err)
	}

	if len(g.projectiles) != 1 {
		t.Fatalf("got %d live shells, expected 1", len(g.projectiles))
	}
	if g.engine.BodyCount() != before+1 {
		t.Errorf("engine body count = %d, expected %d", g.engine.BodyCount(), before+1)
	}
	if g.shots != 1 {
		t.Errorf("shots = %d, expected 1", g.shots)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected shot count 1", res.State.Score)
	}
	if g.ActiveTank() != g.tanks[1] {
		t.Error("turn did not pass to the next tank after fire")
	}
}

func TestFireReleaseReachesTankBeforeTurnAdvance(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	// Hold an aim key, then fire in the same frame. The release must stop
	// the firing tank's turret, not the next tank's.
	var f core.InputFrame
	f.Press(core.ActionAimLeft)
	g.Step(f)

	g.Step(fireFrame())

	if speed := g.tanks[0].turret.Speed(); speed != 0 {
		t.Errorf("firing tank's turret speed = %d after hand-off, expected 0", speed)
	}
}

func TestInactiveTurretKeepsAim(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	// Aim the first tank, fire, then aim while the second tank is active.
	g.Step(pressFrame(core.ActionAimLeft))
	var f core.InputFrame
	f.Release(core.ActionAimLeft)
	g.Step(f)
	aimed := g.tanks[0].TurretAngle()

	g.Step(fireFrame())
	g.Step(pressFrame(core.ActionAimRight))
	for i := 0; i < 9; i++ {
		g.Step(core.InputFrame{})
	}

	if got := g.tanks[0].TurretAngle(); got != aimed {
		t.Errorf("idle tank lost its aim: %d°, expected %d°", got, aimed)
	}
	if got := g.tanks[1].TurretAngle(); got >= conf.Turret.AngleStart {
		t.Errorf("second tank's angle = %d°, expected below %d°", got, conf.Turret.AngleStart)
	}
}

func TestShellDetonatesOnGround(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	res := g.Step(fireFrame())
	if res.Err != nil {
		t.Fatalf("Step: %v", res.Err)
	}
	if len(g.projectiles) != 1 {
		t.Fatalf("got %d live shells, expected 1", len(g.projectiles))
	}
	shell := g.projectiles[0]
	body := shell.Body()

	// The shell launches horizontally and gravity pulls it into the
	// ground within a couple of simulated seconds.
	for i := 0; i < 600 && len(g.projectiles) > 0; i++ {
		g.Step(core.InputFrame{})
	}

	if len(g.projectiles) != 0 {
		t.Fatal("shell never left the live list")
	}
	if !shell.Detonated() {
		t.Error("shell was removed without detonating")
	}
	if g.engine.HasBody(body) {
		t.Error("detonated shell still registered with the engine")
	}
}

func TestShellCulledWhenLeavingPlayfield(t *testing.T) {
	conf := config.Default()
	conf.Physics.GravityY = 1
	conf.Tanks.Power = 200
	g := newTestGame(t, conf)

	res := g.Step(fireFrame())
	if res.Err != nil {
		t.Fatalf("Step: %v", res.Err)
	}
	if len(g.projectiles) != 1 {
		t.Fatalf("got %d live shells, expected 1", len(g.projectiles))
	}
	shell := g.projectiles[0]
	body := shell.Body()

	// With near-zero gravity the shell flies over the ground and exits the
	// right edge, so removal must come from the bounds rule.
	for i := 0; i < 120 && len(g.projectiles) > 0; i++ {
		g.Step(core.InputFrame{})
	}

	if len(g.projectiles) != 0 {
		t.Fatal("shell stayed in the live list after leaving the playfield")
	}
	if shell.Detonated() {
		t.Error("out-of-bounds removal must not count as a detonation")
	}
	if g.engine.HasBody(body) {
		t.Error("culled shell still registered with the engine")
	}
}

func TestDeterministicReplay(t *testing.T) {
	conf := config.Default()
	a := newTestGame(t, conf)
	b := newTestGame(t, conf)

	frames := []core.InputFrame{
		pressFrame(core.ActionAimLeft),
		{},
		{},
		fireFrame(),
		pressFrame(core.ActionAimRight),
		{},
		fireFrame(),
	}
	for i := 0; i < 20; i++ {
		frames = append(frames, core.InputFrame{})
	}

	for i, f := range frames {
		ra := a.Step(f.Clone())
		rb := b.Step(f.Clone())
		if ra.State != rb.State {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, ra.State, rb.State)
		}
	}

	if len(a.projectiles) != len(b.projectiles) {
		t.Fatalf("live shells diverged: %d vs %d", len(a.projectiles), len(b.projectiles))
	}
	for i := range a.projectiles {
		pa := a.projectiles[i].Body().Pos
		pb := b.projectiles[i].Body().Pos
		if pa != pb {
			t.Errorf("shell %d at %+v vs %+v", i, pa, pb)
		}
	}
	for i := range a.tanks {
		if a.tanks[i].TurretAngle() != b.tanks[i].TurretAngle() {
			t.Errorf("tank %d angle %d° vs %d°", i,
				a.tanks[i].TurretAngle(), b.tanks[i].TurretAngle())
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	res := g.Step(pressFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause press did not pause")
	}

	angle := g.ActiveTank().TurretAngle()
	g.Step(pressFrame(core.ActionAimLeft))
	g.Step(core.InputFrame{})
	if got := g.ActiveTank().TurretAngle(); got != angle {
		t.Errorf("angle moved to %d° while paused, expected %d°", got, angle)
	}

	res = g.Step(pressFrame(core.ActionPause))
	if res.State.Paused {
		t.Fatal("second pause press did not resume")
	}
}

func TestRestartIsNotTankInput(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	g.Step(pressFrame(core.ActionRestart))
	if speed := g.ActiveTank().turret.Speed(); speed != 0 {
		t.Errorf("restart press set turret speed %d, expected 0", speed)
	}
}

func TestResetHonorsTankCountOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep any user config out of the chain
	SetTankCount(4)
	defer SetTankCount(0)

	g := New()
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(g.tanks) != 4 {
		t.Errorf("got %d tanks, expected 4 from the override", len(g.tanks))
	}
}

func TestRenderShowsHUDAndGround(t *testing.T) {
	conf := config.Default()
	g := newTestGame(t, conf)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	if !strings.Contains(top, "Angle: 45") {
		t.Errorf("HUD row %q missing aim angle", top)
	}
	if !strings.Contains(top, "Power: 40") {
		t.Errorf("HUD row %q missing power", top)
	}
	if !strings.Contains(top, "Active: Player 1") {
		t.Errorf("HUD row %q missing active player", top)
	}
	if !strings.Contains(top, "Shots: 0") {
		t.Errorf("HUD row %q missing shot count", top)
	}
	if !strings.Contains(screen.Row(1), "Weapon: Standard Shell") {
		t.Errorf("HUD row %q missing weapon name", screen.Row(1))
	}

	for x := 0; x < 80; x += 10 {
		if r := screen.Get(x, g.groundTop); r != '█' {
			t.Fatalf("ground cell (%d, %d) = %q, expected solid fill", x, g.groundTop, r)
		}
	}
}
