package barrage

import (
	"fmt"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// drawHUD overlays the active tank's state on the top rows: aim angle,
// launch power, player name and weapon name, all sourced from the active
// tank's accessors.
func (g *Game) drawHUD(dst *core.Screen) {
	active := g.turns.Current()

	dst.DrawText(2, 0, fmt.Sprintf("Angle: %d", active.TurretAngle()))
	dst.DrawText(18, 0, fmt.Sprintf("Power: %.0f", active.Power()))

	name := fmt.Sprintf("Active: %s", active.Name())
	dst.DrawTextColored((dst.Width()-len(name))/2, 0, name, active.Color())

	weapon := fmt.Sprintf("Weapon: %s", active.Weapon())
	dst.DrawText((dst.Width()-len(weapon))/2, 1, weapon)

	dst.DrawText(dst.Width()-14, 0, fmt.Sprintf("Shots: %d", g.shots))
}
