package level

import (
	"basement/pkg/engine/world"
	"basement/pkg/game/entities"
	gameworld "basement/pkg/game/world"
)

// Player returns the player entity; it keeps existing after death with a nil position
func (l *Level) Player() *entities.Entity {
	return l.player
}

// PlayerDead reports whether the player has been killed
func (l *Level) PlayerDead() bool {
	return l.dead
}

// Score returns the gold collected so far
func (l *Level) Score() int {
	return l.score
}

// Entity resolves a handle; nil once the entity has been removed
func (l *Level) Entity(id entities.ID) *entities.Entity {
	if rec, ok := l.byID[id]; ok {
		return rec.entity
	}
	return nil
}

// Entities returns the living entities in creation order
func (l *Level) Entities() []*entities.Entity {
	out := make([]*entities.Entity, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id].entity)
	}
	return out
}

// EntityAt returns the entity standing at p, or nil
func (l *Level) EntityAt(p world.Point) *entities.Entity {
	return l.byPos[p]
}

// ItemsAt returns the items lying at p in drop order
func (l *Level) ItemsAt(p world.Point) []*entities.Item {
	return l.items[p]
}

// TerrainPassable reports whether the terrain at p can be walked on,
// ignoring entities
func (l *Level) TerrainPassable(p world.Point) bool {
	return l.tm.Passable(p)
}

// CanSee reports whether light passes through p
func (l *Level) CanSee(p world.Point) bool {
	return l.tm.Lightable(p)
}

// CanOpenDoors reports whether e may open closed doors. Only the player can.
func (l *Level) CanOpenDoors(e *entities.Entity) bool {
	return e.IsPlayer()
}

// CanMove reports whether e could step onto p: the terrain must be passable
// and the cell free, except that the player's cell counts as free when
// allowPlayer is set so that monsters can path into an attack.
func (l *Level) CanMove(e *entities.Entity, p world.Point, allowPlayer bool) bool {
	if other := l.EntityAt(p); other != nil && other != e {
		if !(allowPlayer && other.IsPlayer()) {
			return false
		}
	}
	return l.tm.Passable(p)
}

// PassableNeighbors returns the cells around e it could move into, cardinals
// first (N, E, S, W) then diagonals (NE, SE, SW, NW). The player's cell is
// included.
func (l *Level) PassableNeighbors(e *entities.Entity) []world.Point {
	pos, ok := e.Pos()
	if !ok {
		return nil
	}
	var out []world.Point
	for _, p := range append(pos.Neighbors(), pos.DiagonalNeighbors()...) {
		if l.CanMove(e, p, true) {
			out = append(out, p)
		}
	}
	return out
}

// HasLineOfSight reports whether a and b can see each other: both alive,
// within the sight radius, and every cell on the line between them lightable
func (l *Level) HasLineOfSight(a, b *entities.Entity) bool {
	pa, ok := a.Pos()
	if !ok {
		return false
	}
	pb, ok := b.Pos()
	if !ok {
		return false
	}
	if pa.ManhattanDistance(pb) > l.sight {
		return false
	}
	return world.HasLineOfSight(pa, pb, l.CanSee)
}

// Cell returns raw tile data at p, or nil out of bounds
func (l *Level) Cell(p world.Point) *gameworld.Cell {
	return l.tm.Cell(p)
}
