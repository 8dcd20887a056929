package generator

import (
	"math"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
	gameworld "basement/pkg/game/world"

	"go.uber.org/zap"
)

// placeStairs puts stairs-up in the first quadrant and stairs-down in the
// last, each in the room nearest its quadrant's center
func (r *run) placeStairs() {
	quads := r.root.quadrants()
	r.tm.POI.StairsUp = r.placeStairsIn(quads[0], gameworld.FeatureStairsUp)
	r.tm.POI.StairsDown = r.placeStairsIn(quads[len(quads)-1], gameworld.FeatureStairsDown)
}

func (r *run) placeStairsIn(quad *bspNode, feature gameworld.Feature) world.Point {
	center := quad.rect.Center()
	room := nearestRoom(quad.collectRooms(), center)
	inner := room.Inner()

	p := inner.Center()
	for i := 0; i < stairsCandidates; i++ {
		candidate := inner.RandomPoint(r.rng)
		if r.tm.CanPlaceAt(candidate) {
			p = candidate
			break
		}
	}

	r.tm.Cell(p).Feature = feature
	r.tm.Occupy(p)
	return p
}

// budget is the number of things a room gets for a density in percent
func budget(inner world.Rect, density float64) int {
	n := int(math.Round(float64(inner.Area()) * density / 100))
	if n < 1 {
		n = 1
	}
	return n
}

// freePoint looks for an unoccupied passable point inside rect
func (r *run) freePoint(rect world.Rect) (world.Point, bool) {
	for i := 0; i < maxPlacementTries; i++ {
		p := rect.RandomPoint(r.rng)
		if r.tm.CanPlaceAt(p) {
			return p, true
		}
	}
	return world.Point{}, false
}

// placeMonsters fills rooms in creation order with monsters allowed by the
// room type and tier
func (r *run) placeMonsters() {
	tables := r.opts.Tables
	for _, room := range r.tm.Rooms() {
		allowed := tables.MonstersFor(room.Type, room.Difficulty)
		inner := room.Inner()

		for i := budget(inner, room.Type.MonsterDensity); i > 0; i-- {
			mt, ok := weightedChoice(r.rng, allowed, func(mt *content.MonsterType) float64 {
				return mt.Chance
			})
			if !ok {
				r.log.Debug("no monster type for room",
					zap.String("room", room.ID),
					zap.String("room_type", room.Type.ID),
					zap.Int("difficulty", room.Difficulty),
				)
				break
			}
			p, ok := r.freePoint(inner)
			if !ok {
				r.placementFailed(room, "monster", mt.ID)
				continue
			}
			r.tm.Occupy(p)
			r.tm.POI.Monsters = append(r.tm.POI.Monsters, gameworld.MonsterSpawn{
				Type:     mt,
				Position: p,
				RoomID:   room.ID,
			})
		}
	}
}

// placeItems gives every room one gold coin and then its weighted share of
// other items
func (r *run) placeItems() {
	tables := r.opts.Tables
	gold := tables.Gold()
	for _, room := range r.tm.Rooms() {
		inner := room.Inner()

		if p, ok := r.goldPoint(inner); ok {
			r.dropItem(room, gold, p)
		} else {
			r.placementFailed(room, "item", gold.ID)
		}

		for i := budget(inner, room.Type.ItemDensity); i > 0; i-- {
			it, ok := weightedChoice(r.rng, tables.Items(), func(it *content.ItemType) float64 {
				if it.IsGold() {
					return 0
				}
				return it.Chance(room.Difficulty)
			})
			if !ok {
				break
			}
			p, ok := r.freePoint(inner)
			if !ok {
				r.placementFailed(room, "item", it.ID)
				continue
			}
			r.dropItem(room, it, p)
		}
	}
}

// goldPoint falls back to a scan of the room so the gold coin only goes
// missing when the room is full
func (r *run) goldPoint(inner world.Rect) (world.Point, bool) {
	if p, ok := r.freePoint(inner); ok {
		return p, true
	}
	for _, p := range inner.Points() {
		if r.tm.CanPlaceAt(p) {
			return p, true
		}
	}
	return world.Point{}, false
}

func (r *run) dropItem(room *gameworld.Room, it *content.ItemType, p world.Point) {
	r.tm.Occupy(p)
	r.tm.POI.Items = append(r.tm.POI.Items, gameworld.ItemSpawn{
		Type:     it,
		Position: p,
		RoomID:   room.ID,
	})
}

func (r *run) placementFailed(room *gameworld.Room, kind, typeID string) {
	r.log.Warn("placement retries exhausted",
		zap.String("room", room.ID),
		zap.String("kind", kind),
		zap.String("type", typeID),
	)
}
