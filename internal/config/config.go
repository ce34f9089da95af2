// Package config provides YAML-based game configuration loading for the
// platform. Every gameplay constant lives here instead of package-level
// mutable state, and is handed to constructors explicitly.
package config

// Config contains all configuration for the artillery game.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Turret     TurretConfig     `yaml:"turret"`
	Tanks      TanksConfig      `yaml:"tanks"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// WindowConfig defines the window title and the fallback playfield size
// used when the terminal size cannot be detected.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PhysicsConfig defines the engine's gravity vector (cells/s², Y grows
// downward) and the per-second velocity damping applied to dynamic bodies.
type PhysicsConfig struct {
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
	Damping  float64 `yaml:"damping"`
}

// TurretConfig defines the aim arc and stepping of every turret.
type TurretConfig struct {
	AngleMin   int `yaml:"angle_min"`   // Lowest aim angle in degrees
	AngleMax   int `yaml:"angle_max"`   // Highest aim angle in degrees
	AngleStart int `yaml:"angle_start"` // Initial aim angle in degrees
	SpeedStep  int `yaml:"speed_step"`  // Degrees per tick while a key is held
	Length     int `yaml:"length"`      // Barrel length in cells
}

// TanksConfig defines the tank roster for a match. Power and weapon are
// required per-tank HUD inputs; there is no generated default for them.
type TanksConfig struct {
	Count  int      `yaml:"count"`  // Number of tanks; overridable via --tanks
	Size   int      `yaml:"size"`   // Hull width in cells
	Power  float64  `yaml:"power"`  // Launch impulse magnitude
	Weapon string   `yaml:"weapon"` // Active weapon name shown in the HUD
	Colors []string `yaml:"colors"` // Hull color palette, assigned circularly
}

// ProjectileConfig defines the physical parameters of a fired shell.
type ProjectileConfig struct {
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Damping  float64 `yaml:"damping"` // 0 uses the engine default
}
