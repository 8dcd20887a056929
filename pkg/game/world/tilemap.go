package world

import (
	"fmt"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"

	"github.com/zyedidia/generic/mapset"
)

// MonsterSpawn is a monster the generator wants placed when the level starts
type MonsterSpawn struct {
	Type     *content.MonsterType
	Position world.Point
	RoomID   string
}

// ItemSpawn is an item the generator wants dropped when the level starts
type ItemSpawn struct {
	Type     *content.ItemType
	Position world.Point
	RoomID   string
}

// PointsOfInterest are the generator's placement results
type PointsOfInterest struct {
	StairsUp   world.Point
	StairsDown world.Point
	Monsters   []MonsterSpawn
	Items      []ItemSpawn
}

// Corridor records one carved connection between two rooms
type Corridor struct {
	From, To   string
	Annotation string
	Cells      []world.Point
	Doors      []world.Point
	Attempts   int
}

// TileMap is the generated grid. It is built by the generator and then only
// read, except for door terrain which the level toggles during play.
type TileMap struct {
	size      world.Size
	cells     []Cell
	terrain   TerrainTable
	rooms     []*Room
	roomsByID map[string]*Room
	roomCells map[string][]world.Point
	occupied  mapset.Set[world.Point]

	POI       PointsOfInterest
	Corridors []Corridor
}

// NewTileMap creates a map of the given size filled with TerrainEmpty
func NewTileMap(size world.Size, terrain TerrainTable) *TileMap {
	if size.W <= 0 || size.H <= 0 {
		panic("TileMap dimensions must be positive")
	}
	tm := &TileMap{
		size:      size,
		cells:     make([]Cell, size.W*size.H),
		terrain:   terrain,
		roomsByID: make(map[string]*Room),
		roomCells: make(map[string][]world.Point),
		occupied:  mapset.New[world.Point](),
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			tm.cells[y*size.W+x] = newCell(world.Pt(x, y))
		}
	}
	return tm
}

// Size returns the map dimensions
func (tm *TileMap) Size() world.Size {
	return tm.size
}

// Bounds returns the map as a rect at the origin
func (tm *TileMap) Bounds() world.Rect {
	return world.NewRect(world.Point{}, tm.size)
}

// InBounds reports whether p is on the map
func (tm *TileMap) InBounds(p world.Point) bool {
	return p.X >= 0 && p.X < tm.size.W && p.Y >= 0 && p.Y < tm.size.H
}

// Cell returns the cell at p, or nil if out of bounds
func (tm *TileMap) Cell(p world.Point) *Cell {
	if !tm.InBounds(p) {
		return nil
	}
	return &tm.cells[p.Y*tm.size.W+p.X]
}

// Terrain returns the terrain at p; out-of-bounds points are TerrainEmpty
func (tm *TileMap) Terrain(p world.Point) Terrain {
	if c := tm.Cell(p); c != nil {
		return c.Terrain
	}
	return TerrainEmpty
}

// SetTerrain changes the terrain at p. Returns false if out of bounds.
func (tm *TileMap) SetTerrain(p world.Point, t Terrain) bool {
	c := tm.Cell(p)
	if c == nil {
		return false
	}
	c.Terrain = t
	return true
}

// Passable reports whether the terrain at p can be walked on
func (tm *TileMap) Passable(p world.Point) bool {
	return tm.InBounds(p) && tm.terrain.Props(tm.Terrain(p)).Walkable
}

// Lightable reports whether light passes through p
func (tm *TileMap) Lightable(p world.Point) bool {
	return tm.InBounds(p) && tm.terrain.Props(tm.Terrain(p)).Lightable
}

// ForEachCell iterates over all cells in row-major order
func (tm *TileMap) ForEachCell(fn func(p world.Point, c *Cell)) {
	for i := range tm.cells {
		fn(tm.cells[i].Point, &tm.cells[i])
	}
}

// AddRoom registers a room. Rooms keep their creation order.
func (tm *TileMap) AddRoom(r *Room) {
	if _, dup := tm.roomsByID[r.ID]; dup {
		panic(fmt.Sprintf("room %s added twice", r.ID))
	}
	tm.rooms = append(tm.rooms, r)
	tm.roomsByID[r.ID] = r
}

// AssignRoom marks p as belonging to room id. A cell belongs to at most one
// room; assigning it twice panics.
func (tm *TileMap) AssignRoom(p world.Point, id string) {
	c := tm.Cell(p)
	if c == nil {
		panic(fmt.Sprintf("assigning room %s outside the map at %v", id, p))
	}
	if c.RoomID != "" {
		panic(fmt.Sprintf("cell %v already belongs to room %s, cannot assign %s", p, c.RoomID, id))
	}
	c.RoomID = id
	tm.roomCells[id] = append(tm.roomCells[id], p)
}

// Rooms returns all rooms in creation order
func (tm *TileMap) Rooms() []*Room {
	return tm.rooms
}

// Room looks up a room by id
func (tm *TileMap) Room(id string) (*Room, bool) {
	r, ok := tm.roomsByID[id]
	return r, ok
}

// RoomAt returns the room owning p, or nil
func (tm *TileMap) RoomAt(p world.Point) *Room {
	c := tm.Cell(p)
	if c == nil || c.RoomID == "" {
		return nil
	}
	return tm.roomsByID[c.RoomID]
}

// CellsInRoom returns every point assigned to room id
func (tm *TileMap) CellsInRoom(id string) []world.Point {
	return tm.roomCells[id]
}

// Occupy marks p as used by a placed feature, monster or item
func (tm *TileMap) Occupy(p world.Point) {
	tm.occupied.Put(p)
}

// IsOccupied reports whether something has been placed at p
func (tm *TileMap) IsOccupied(p world.Point) bool {
	return tm.occupied.Has(p)
}

// CanPlaceAt reports whether a monster or item may be placed at p during generation
func (tm *TileMap) CanPlaceAt(p world.Point) bool {
	return tm.Passable(p) && !tm.IsOccupied(p)
}
