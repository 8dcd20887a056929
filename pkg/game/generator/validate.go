package generator

import (
	"errors"
	"fmt"

	"basement/pkg/engine/world"
	gameworld "basement/pkg/game/world"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// traversable is terrain a walker can cross once doors are opened
func traversable(t gameworld.Terrain) bool {
	switch t {
	case gameworld.TerrainFloor, gameworld.TerrainCorridor, gameworld.TerrainDoorClosed, gameworld.TerrainDoorOpen:
		return true
	default:
		return false
	}
}

// Reachable returns every traversable point connected to start through
// N/E/S/W steps
func Reachable(tm *gameworld.TileMap, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !traversable(tm.Terrain(start)) {
		return visited
	}
	visited.Put(start)
	frontier := queue.New[world.Point]()
	frontier.Enqueue(start)
	for !frontier.Empty() {
		p := frontier.Dequeue()
		for _, n := range p.Neighbors() {
			if !visited.Has(n) && traversable(tm.Terrain(n)) {
				visited.Put(n)
				frontier.Enqueue(n)
			}
		}
	}
	return visited
}

// Validate checks a generated map: stairs sit in the first and last tiers,
// every room can be walked to from stairs-up, and no corridor kept more
// than the allowed doors without exhausting its re-rolls.
func Validate(tm *gameworld.TileMap) error {
	var errs []error

	up, down := tm.POI.StairsUp, tm.POI.StairsDown
	if c := tm.Cell(up); c == nil || c.Feature != gameworld.FeatureStairsUp {
		errs = append(errs, fmt.Errorf("no stairs up at %v", up))
	}
	if c := tm.Cell(down); c == nil || c.Feature != gameworld.FeatureStairsDown {
		errs = append(errs, fmt.Errorf("no stairs down at %v", down))
	}
	if room := tm.RoomAt(up); room == nil || room.Difficulty != 0 {
		errs = append(errs, fmt.Errorf("stairs up at %v not in tier 0", up))
	}
	if room := tm.RoomAt(down); room == nil || room.Difficulty != len(quadrantPaths)-1 {
		errs = append(errs, fmt.Errorf("stairs down at %v not in tier %d", down, len(quadrantPaths)-1))
	}

	reachable := Reachable(tm, up)
	for _, room := range tm.Rooms() {
		if !reachable.Has(room.Inner().Center()) {
			errs = append(errs, fmt.Errorf("room %s at %v unreachable from stairs up", room.ID, room.Rect))
		}
	}

	for _, c := range tm.Corridors {
		if len(c.Doors) > maxCorridorDoors && c.Attempts < maxCorridorRolls {
			errs = append(errs, fmt.Errorf("corridor %s-%s has %d doors after %d attempts",
				c.From, c.To, len(c.Doors), c.Attempts))
		}
	}

	return errors.Join(errs...)
}
