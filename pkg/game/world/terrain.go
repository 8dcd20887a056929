package world

import (
	"fmt"

	"basement/pkg/game/content"
)

// Terrain is the kind of ground in a cell
type Terrain int

// Terrain kinds. TerrainEmpty is solid rock outside every room.
const (
	TerrainEmpty Terrain = iota
	TerrainFloor
	TerrainWall
	TerrainDoorClosed
	TerrainDoorOpen
	TerrainCorridor

	terrainCount
)

var terrainNames = [terrainCount]string{
	TerrainEmpty:      "EMPTY",
	TerrainFloor:      "FLOOR",
	TerrainWall:       "WALL",
	TerrainDoorClosed: "DOOR_CLOSED",
	TerrainDoorOpen:   "DOOR_OPEN",
	TerrainCorridor:   "CORRIDOR",
}

// String returns the content id of the terrain
func (t Terrain) String() string {
	if t < 0 || t >= terrainCount {
		return "UNKNOWN"
	}
	return terrainNames[t]
}

// ParseTerrain maps a content id to a terrain kind
func ParseTerrain(id string) (Terrain, bool) {
	for i, name := range terrainNames {
		if name == id {
			return Terrain(i), true
		}
	}
	return TerrainEmpty, false
}

// IsDoor returns true for open and closed doors
func (t Terrain) IsDoor() bool {
	return t == TerrainDoorClosed || t == TerrainDoorOpen
}

// TerrainProps are the movement and light properties of a terrain kind
type TerrainProps struct {
	Walkable  bool
	Lightable bool
}

// TerrainTable holds the properties of every terrain kind
type TerrainTable [terrainCount]TerrainProps

// DefaultTerrain returns the built-in terrain properties
func DefaultTerrain() TerrainTable {
	var t TerrainTable
	t[TerrainFloor] = TerrainProps{Walkable: true, Lightable: true}
	t[TerrainDoorOpen] = TerrainProps{Walkable: true, Lightable: true}
	t[TerrainCorridor] = TerrainProps{Walkable: true, Lightable: true}
	return t
}

// TerrainFromContent builds a terrain table from loaded content. Kinds the
// content does not mention keep their built-in properties.
func TerrainFromContent(tables *content.Tables) (TerrainTable, error) {
	t := DefaultTerrain()
	for _, tt := range tables.TerrainTypes() {
		kind, ok := ParseTerrain(tt.ID)
		if !ok {
			return t, fmt.Errorf("terrain %q: %w", tt.ID, content.ErrUnknownID)
		}
		t[kind] = TerrainProps{Walkable: tt.Walkable, Lightable: tt.Lightable}
	}
	return t, nil
}

// Props returns the properties of kind k
func (t TerrainTable) Props(k Terrain) TerrainProps {
	if k < 0 || k >= terrainCount {
		return TerrainProps{}
	}
	return t[k]
}
