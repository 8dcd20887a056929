package generator

import (
	"fmt"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
	gameworld "basement/pkg/game/world"

	"github.com/google/uuid"
)

// createRooms creates a room in every leaf node. Room type and shape depend
// on the tier of the quadrant the leaf sits in.
func (r *run) createRooms() error {
	for _, leaf := range r.root.leaves() {
		difficulty := difficultyOf(leaf.path)

		rt, ok := weightedChoice(r.rng, r.opts.Tables.RoomsFor(difficulty), func(rt *content.RoomType) float64 {
			return rt.Chance
		})
		if !ok {
			return fmt.Errorf("no room type for difficulty %d: %w", difficulty, content.ErrUnknownID)
		}

		var rect world.Rect
		switch rt.Shape {
		case content.ShapeFullBox:
			rect = leaf.rect
		default:
			rect = leaf.rect.RandomRect(r.rng, world.Size{W: minRoomSize, H: minRoomSize})
		}

		id, err := uuid.NewRandomFromReader(r.rng)
		if err != nil {
			return fmt.Errorf("room id: %w", err)
		}
		leaf.room = gameworld.NewRoom(id.String(), rt, rect, difficulty)
	}
	return nil
}

// engraveRooms carves rooms into the map: border to wall, interior to floor
func (r *run) engraveRooms() {
	for _, room := range r.root.collectRooms() {
		r.tm.AddRoom(room)
		rect := room.Rect

		corners := rect.Corners()
		cornerTags := [4]string{
			gameworld.AnnotationCornerTopLeft,
			gameworld.AnnotationCornerTopRight,
			gameworld.AnnotationCornerBottomLeft,
			gameworld.AnnotationCornerBottomRight,
		}
		for i, p := range corners {
			r.engraveWall(p, cornerTags[i])
		}
		for _, p := range append(rect.TopEdge(), rect.BottomEdge()...) {
			r.engraveWall(p, gameworld.AnnotationHorizontal)
		}
		for _, p := range append(rect.LeftEdge(), rect.RightEdge()...) {
			r.engraveWall(p, gameworld.AnnotationVertical)
		}
		for _, p := range room.Inner().Points() {
			r.tm.SetTerrain(p, gameworld.TerrainFloor)
		}

		for _, p := range rect.Points() {
			r.tm.AssignRoom(p, room.ID)
		}
	}
}

func (r *run) engraveWall(p world.Point, annotation string) {
	c := r.tm.Cell(p)
	if c == nil {
		return
	}
	c.Terrain = gameworld.TerrainWall
	c.Annotate(annotation)
}
