package config

import (
	_ "embed"
)

//go:embed defaults/barrage.yaml
var defaultBarrageYAML []byte

// Default returns the built-in configuration, used when no YAML file is
// found or the embedded copy fails to parse.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Barrage",
			Width:  80,
			Height: 24,
		},
		Physics: PhysicsConfig{
			GravityX: 0.0,
			GravityY: 30.0,
			Damping:  1.0,
		},
		Turret: TurretConfig{
			AngleMin:   0,
			AngleMax:   180,
			AngleStart: 45,
			SpeedStep:  2,
			Length:     4,
		},
		Tanks: TanksConfig{
			Count:  2,
			Size:   5,
			Power:  40.0,
			Weapon: "Standard Shell",
			Colors: []string{"red", "blue", "green", "yellow", "magenta", "cyan"},
		},
		Projectile: ProjectileConfig{
			Mass:     1.0,
			Friction: 0.6,
			Damping:  0.0,
		},
	}
}
