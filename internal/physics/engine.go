// Package physics implements the synchronous 2D stepper behind the game:
// gravity and damping integration for dynamic bodies, AABB overlap checks
// between categories, and post-collision callbacks. It is single-threaded
// by contract; Step must complete before rendering reads body positions.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// ErrUnknownCategory is returned when a body or handler references a
// collision category that was never registered. Registration order is a
// setup-time contract: categories first, then handlers and bodies.
var ErrUnknownCategory = errors.New("physics: unknown collision category")

// Handler is invoked after two bodies of the registered category pair
// overlap during a step. The first argument always belongs to the first
// category of the pair. Handlers may remove bodies from the engine.
type Handler func(a, b *Body)

type pair struct {
	a, b Category
}

// Engine owns the body registry and advances the simulation.
type Engine struct {
	gravity    core.Vec2
	damping    float64 // per-second velocity retention, (0, 1]
	categories map[Category]struct{}
	bodies     []*Body
	handlers   map[pair]Handler
}

// New creates an engine with the given gravity vector (cells/s²,
// Y grows downward) and default per-second damping.
func New(gravity core.Vec2, damping float64) *Engine {
	if damping <= 0 || damping > 1 {
		damping = 1
	}
	return &Engine{
		gravity:    gravity,
		damping:    damping,
		categories: make(map[Category]struct{}),
		handlers:   make(map[pair]Handler),
	}
}

// RegisterCategory declares a collision category. Bodies and handlers
// may only reference declared categories.
func (e *Engine) RegisterCategory(c Category) {
	e.categories[c] = struct{}{}
}

// OnCollision registers a post-collision handler for the (a, b) pair.
// Both categories must have been registered beforehand.
func (e *Engine) OnCollision(a, b Category, h Handler) error {
	if _, ok := e.categories[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, a)
	}
	if _, ok := e.categories[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, b)
	}
	e.handlers[pair{a, b}] = h
	return nil
}

// AddBody registers a body with the engine. The body's category must have
// been registered; this surfaces mis-ordered setup at startup instead of
// producing silent no-collision states.
func (e *Engine) AddBody(b *Body) error {
	if _, ok := e.categories[b.Category]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, b.Category)
	}
	e.bodies = append(e.bodies, b)
	return nil
}

// RemoveBody unregisters a body. Removing an unknown body is a no-op.
func (e *Engine) RemoveBody(b *Body) {
	for i, other := range e.bodies {
		if other == b {
			e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
			return
		}
	}
}

// HasBody reports whether the body is currently registered.
func (e *Engine) HasBody(b *Body) bool {
	for _, other := range e.bodies {
		if other == b {
			return true
		}
	}
	return false
}

// BodyCount returns the number of registered bodies.
func (e *Engine) BodyCount() int {
	return len(e.bodies)
}

// ApplyImpulse applies a one-time impulse to a dynamic body (Δv = j/m).
// Static bodies are unaffected.
func (e *Engine) ApplyImpulse(b *Body, impulse core.Vec2) {
	if b.Type != Dynamic {
		return
	}
	b.Vel = b.Vel.Add(impulse.Scale(1 / b.mass()))
}

// Step advances all dynamic bodies by dt seconds, then runs the collision
// pass. Collisions are collected first and handlers invoked afterwards so
// a handler can safely remove bodies mid-iteration.
func (e *Engine) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range e.bodies {
		if b.Type != Dynamic {
			continue
		}
		b.Vel = b.Vel.Add(e.gravity.Scale(dt))

		damping := b.Damping
		if damping <= 0 || damping > 1 {
			damping = e.damping
		}
		if damping < 1 {
			decay := math.Pow(damping, dt)
			b.Vel = b.Vel.Scale(decay)
		}

		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}

	e.resolveCollisions()
}

type collision struct {
	handler Handler
	a, b    *Body
}

func (e *Engine) resolveCollisions() {
	var hits []collision
	for i, a := range e.bodies {
		if a.Type != Dynamic {
			continue
		}
		for j, b := range e.bodies {
			if i == j {
				continue
			}
			// Dynamic pairs are visited twice; only report the ordered one.
			if b.Type == Dynamic && j < i {
				continue
			}
			if !a.Overlaps(b) {
				continue
			}
			if h, ok := e.handlers[pair{a.Category, b.Category}]; ok {
				hits = append(hits, collision{handler: h, a: a, b: b})
			} else if h, ok := e.handlers[pair{b.Category, a.Category}]; ok {
				hits = append(hits, collision{handler: h, a: b, b: a})
			}
		}
	}

	for _, hit := range hits {
		// Skip pairs whose bodies were removed by an earlier handler.
		if !e.HasBody(hit.a) || !e.HasBody(hit.b) {
			continue
		}
		hit.handler(hit.a, hit.b)
	}
}
