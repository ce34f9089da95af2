package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	yaml := `
window:
  title: "Custom"
  width: 120
  height: 40
physics:
  gravity_y: 50
  damping: 0.9
turret:
  angle_min: 10
  angle_max: 170
  angle_start: 90
  speed_step: 3
  length: 6
tanks:
  count: 4
  size: 7
  power: 55
  weapon: "Heavy Shell"
  colors: ["red", "blue"]
projectile:
  mass: 2
  friction: 0.4
`
	path := filepath.Join(t.TempDir(), "barrage.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Title != "Custom" || cfg.Window.Width != 120 || cfg.Window.Height != 40 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Physics.GravityY != 50 || cfg.Physics.Damping != 0.9 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Turret.AngleStart != 90 || cfg.Turret.SpeedStep != 3 || cfg.Turret.Length != 6 {
		t.Errorf("turret = %+v", cfg.Turret)
	}
	if cfg.Tanks.Count != 4 || cfg.Tanks.Power != 55 || cfg.Tanks.Weapon != "Heavy Shell" {
		t.Errorf("tanks = %+v", cfg.Tanks)
	}
	if len(cfg.Tanks.Colors) != 2 {
		t.Errorf("colors = %v, expected 2 entries", cfg.Tanks.Colors)
	}
	if cfg.Projectile.Mass != 2 || cfg.Projectile.Friction != 0.4 {
		t.Errorf("projectile = %+v", cfg.Projectile)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should fail on an explicit path that does not exist")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail on malformed YAML at an explicit path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// With no custom path and no config files in the search chain, the
	// embedded defaults apply. Run from a temp dir so ./configs is absent.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg.Turret != want.Turret {
		t.Errorf("turret = %+v, expected embedded defaults %+v", cfg.Turret, want.Turret)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, expected embedded defaults %+v", cfg.Physics, want.Physics)
	}
	if cfg.Tanks.Count != want.Tanks.Count || cfg.Tanks.Weapon != want.Tanks.Weapon {
		t.Errorf("tanks = %+v, expected embedded defaults %+v", cfg.Tanks, want.Tanks)
	}
}

func TestDefaultIsPlayable(t *testing.T) {
	cfg := Default()

	if cfg.Tanks.Count < 1 {
		t.Error("default roster is empty")
	}
	if cfg.Tanks.Power <= 0 || cfg.Tanks.Weapon == "" {
		t.Error("default loadout is incomplete")
	}
	if cfg.Turret.AngleStart < cfg.Turret.AngleMin || cfg.Turret.AngleStart > cfg.Turret.AngleMax {
		t.Errorf("default start angle %d outside arc [%d, %d]",
			cfg.Turret.AngleStart, cfg.Turret.AngleMin, cfg.Turret.AngleMax)
	}
	if cfg.Physics.GravityY <= 0 {
		t.Error("default gravity does not pull shells down")
	}
}
