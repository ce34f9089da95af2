package barrage

import "errors"

// Setup-time precondition failures. All are returned from Reset so a broken
// configuration fails at startup rather than producing a confusing session.
var (
	// ErrEmptyTurnOrder is returned when a match is configured with zero tanks.
	ErrEmptyTurnOrder = errors.New("barrage: turn order requires at least one tank")

	// ErrInvalidAngle is returned when the configured turret arc or starting
	// angle is out of range. Clamping makes this unreachable at runtime.
	ErrInvalidAngle = errors.New("barrage: turret angle outside the configured arc")

	// ErrMissingLoadout is returned when a tank's power or weapon name is not
	// configured. Both are required HUD inputs with no generated default.
	ErrMissingLoadout = errors.New("barrage: tank power and weapon must be configured")
)
