package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxMoveAttempts bounds the reflection/collision retry chain of a single
// move. Reaching it means the entity is boxed in by same-type cells on
// every heading the resolver tried; the move fails with ErrRetryLimit
// instead of looping.
const maxMoveAttempts = 8

// ErrRetryLimit is returned when a move cannot commit within
// maxMoveAttempts direction changes.
var ErrRetryLimit = errors.New("sim: move retry limit exceeded")

// MoveResult is the outcome of one entity's move attempt. Toggles lists
// the grid coordinates that must be flipped as a side effect of the move,
// in resolution order. The engine never applies them itself; the caller
// does, once, via ApplyToggles.
type MoveResult struct {
	Success bool
	X, Y    int
	Toggles []Coord
}

// Engine owns the movement and collision rules plus the shared per-type
// heading state. Entities of one type steer together: a collision by any
// of them changes the heading for all of them. Because of that sharing,
// entities must be processed in a fixed order by a single goroutine.
type Engine struct {
	headings [2]Direction // indexed by CellState
	rng      *rand.Rand
}

// NewEngine creates an engine with both headings at left-up and a seeded
// RNG for the random collision fallback.
func NewEngine(seed int64) *Engine {
	return &Engine{
		headings: [2]Direction{LeftUp, LeftUp},
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Heading returns the active heading for the given entity type.
func (e *Engine) Heading(t CellState) Direction {
	return e.headings[t]
}

// Move attempts one step for the entity. Each attempt either commits the
// step, reflects the heading off a boundary, or resolves a collision by
// steering to an alternative heading and recording toggles. Collision
// toggles accumulate across attempts into a single ordered list.
//
// On success the entity's position (and previous position) are updated in
// place. If no attempt commits within maxMoveAttempts, the entity stays
// put and the accumulated toggles are returned alongside ErrRetryLimit.
func (e *Engine) Move(ent *Entity, g *Grid) (MoveResult, error) {
	var toggles []Coord

	for attempt := 0; attempt < maxMoveAttempts; attempt++ {
		heading := e.headings[ent.Type]
		next := C(ent.X, ent.Y).Step(heading)
		nx, ny := next.X, next.Y

		// Boundary: reflect and retry. No position change, no toggle.
		if b := boundaryFor(nx, ny, g.W, g.H); b != boundaryNone {
			e.headings[ent.Type] = heading.Reflect(b)
			continue
		}

		// Collision: landing on a same-type cell flips it, possibly with
		// adjacent secondary flips, then the move retries from the
		// original position under the new heading.
		if g.at(nx, ny) == ent.Type {
			newHeading, secondaries := e.resolveCollision(ent, g, heading)
			e.headings[ent.Type] = newHeading

			toggles = append(toggles, next)
			for _, off := range secondaries {
				// Out-of-bounds secondary targets are dropped.
				if target := next.Step(off); g.InBounds(target.X, target.Y) {
					toggles = append(toggles, target)
				}
			}
			continue
		}

		ent.PX, ent.PY = ent.X, ent.Y
		ent.X, ent.Y = nx, ny
		return MoveResult{Success: true, X: nx, Y: ny, Toggles: toggles}, nil
	}

	return MoveResult{X: ent.X, Y: ent.Y, Toggles: toggles},
		fmt.Errorf("%s entity at (%d,%d): %w", ent.Type, ent.X, ent.Y, ErrRetryLimit)
}

// resolveCollision picks the next heading after the current one collided.
// The two fixed alternatives are tried in order; the first whose candidate
// cell is in-bounds and not same-type wins and contributes one secondary
// toggle offset. If neither clears, a uniformly random diagonal is chosen
// and the original heading's two fallback offsets apply.
func (e *Engine) resolveCollision(ent *Entity, g *Grid, heading Direction) (Direction, []Direction) {
	if alts, ok := alternatives(heading); ok {
		for _, alt := range alts {
			dx, dy := alt.Delta()
			tx, ty := ent.X+dx, ent.Y+dy
			if g.InBounds(tx, ty) && g.at(tx, ty) != ent.Type {
				if sec, ok := secondaryFor(alt); ok {
					return alt, []Direction{sec}
				}
				return alt, nil
			}
		}
	}

	next := diagonals[e.rng.Intn(len(diagonals))]
	return next, fallbackSecondaries(heading)
}

// BatchMove moves every entity in slice order in a single pass and
// concatenates the returned toggle lists (entity order, then within-entity
// resolution order). Toggles are not applied here. If a move fails, the
// pass stops at the failing entity; toggles gathered so far, including the
// failing entity's, are still returned so the caller can keep the grid
// consistent with the collisions that did resolve.
func (e *Engine) BatchMove(entities []*Entity, g *Grid) ([]Coord, error) {
	var all []Coord
	for _, ent := range entities {
		result, err := e.Move(ent, g)
		all = append(all, result.Toggles...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// ApplyToggles flips every listed cell. Duplicate coordinates toggle
// multiple times, so two entries for one cell cancel out. The engine only
// emits in-bounds coordinates; anything else is skipped.
func ApplyToggles(g *Grid, toggles []Coord) {
	for _, c := range toggles {
		if g.InBounds(c.X, c.Y) {
			g.toggle(c.X, c.Y)
		}
	}
}
