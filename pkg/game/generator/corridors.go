package generator

import (
	"fmt"

	"basement/pkg/engine/world"
	gameworld "basement/pkg/game/world"

	"go.uber.org/zap"
)

// corridorPlan is one candidate L-shaped connection
type corridorPlan struct {
	doors []world.Point
	cells []world.Point
}

// planCorridor picks random interior points in both rooms and walks an L
// between them, noting which walls become doors and which rock becomes corridor
func (r *run) planCorridor(a, b *gameworld.Room) corridorPlan {
	start := a.Inner().RandomPoint(r.rng)
	end := b.Inner().RandomPoint(r.rng)
	path := world.PathL(start, end, r.rng.Intn(2) == 0)

	var plan corridorPlan
	for _, p := range path {
		switch r.tm.Terrain(p) {
		case gameworld.TerrainWall:
			plan.doors = append(plan.doors, p)
		case gameworld.TerrainEmpty:
			plan.cells = append(plan.cells, p)
		}
	}
	return plan
}

// engraveCorridor connects two rooms, re-rolling paths that cross too many
// walls. After maxCorridorRolls attempts the last candidate is kept.
func (r *run) engraveCorridor(a, b *gameworld.Room, annotation string) {
	var plan corridorPlan
	attempts := 0
	for attempts < maxCorridorRolls {
		attempts++
		plan = r.planCorridor(a, b)
		if len(plan.doors) <= maxCorridorDoors {
			break
		}
	}
	if len(plan.doors) > maxCorridorDoors {
		r.log.Debug("corridor keeps too many doors",
			zap.String("from", a.ID),
			zap.String("to", b.ID),
			zap.Int("doors", len(plan.doors)),
		)
	}

	door := gameworld.TerrainDoorClosed
	if r.opts.DoorsOpen {
		door = gameworld.TerrainDoorOpen
	}
	for _, p := range plan.doors {
		r.tm.SetTerrain(p, door)
	}
	for _, p := range plan.cells {
		r.tm.SetTerrain(p, gameworld.TerrainCorridor)
		if annotation != "" {
			r.tm.Cell(p).Annotate(annotation)
		}
	}

	a.Connect(b)
	r.tm.Corridors = append(r.tm.Corridors, gameworld.Corridor{
		From:       a.ID,
		To:         b.ID,
		Annotation: annotation,
		Cells:      plan.cells,
		Doors:      plan.doors,
		Attempts:   attempts,
	})
}

// connectSiblings joins every pair of BSP siblings inside a quadrant through
// the leftmost room of each subtree
func (r *run) connectSiblings() {
	for _, pair := range r.root.siblingPairs(2) {
		a := pair[0].leftmostLeaf().room
		b := pair[1].leftmostLeaf().room
		r.engraveCorridor(a, b, "")
	}
}

// connectQuadrants carves one corridor across each boundary between
// consecutive tiers, between the nearest pair of rooms
func (r *run) connectQuadrants() {
	quads := r.root.quadrants()
	for i := 0; i < len(quads)-1; i++ {
		from, to := quads[i], quads[i+1]
		a := nearestRoom(from.collectRooms(), to.rect.Center())
		b := nearestRoom(to.collectRooms(), a.Rect.Center())
		r.engraveCorridor(a, b, fmt.Sprintf("%s%d-%d", gameworld.TransitionPrefix, i, i+1))
	}
}

// nearestRoom returns the room whose center is closest to p; ties go to the
// first room
func nearestRoom(rooms []*gameworld.Room, p world.Point) *gameworld.Room {
	var best *gameworld.Room
	bestDist := 0
	for _, room := range rooms {
		d := room.Rect.Center().ManhattanDistance(p)
		if best == nil || d < bestDist {
			best, bestDist = room, d
		}
	}
	return best
}
