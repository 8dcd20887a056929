package world

import (
	"basement/pkg/engine/world"
	"basement/pkg/game/content"

	"github.com/zyedidia/generic/mapset"
)

// Room is a rectangular room carved into the map. Rect includes the walls.
type Room struct {
	ID         string
	Type       *content.RoomType
	Rect       world.Rect
	Difficulty int
	Neighbors  mapset.Set[string]
}

// NewRoom creates a room with no neighbours
func NewRoom(id string, rt *content.RoomType, rect world.Rect, difficulty int) *Room {
	return &Room{
		ID:         id,
		Type:       rt,
		Rect:       rect,
		Difficulty: difficulty,
		Neighbors:  mapset.New[string](),
	}
}

// Inner returns the floor area inside the walls
func (r *Room) Inner() world.Rect {
	return r.Rect.Inset(1)
}

// Connect records a corridor between r and other in both rooms
func (r *Room) Connect(other *Room) {
	r.Neighbors.Put(other.ID)
	other.Neighbors.Put(r.ID)
}
