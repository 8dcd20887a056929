// Package world holds the generated map of a basement level: terrain, rooms,
// annotations and the points of interest the level is seeded from.
package world

import (
	"strings"

	"basement/pkg/engine/world"

	"github.com/zyedidia/generic/mapset"
)

// Feature is a special fixture placed on a cell
type Feature int

// Features
const (
	FeatureNone Feature = iota
	FeatureStairsUp
	FeatureStairsDown
)

// String returns a short name for the feature
func (f Feature) String() string {
	switch f {
	case FeatureStairsUp:
		return "stairs_up"
	case FeatureStairsDown:
		return "stairs_down"
	default:
		return "none"
	}
}

// Wall annotations written when rooms are engraved
const (
	AnnotationCornerTopLeft     = "corner_top_left"
	AnnotationCornerTopRight    = "corner_top_right"
	AnnotationCornerBottomLeft  = "corner_bottom_left"
	AnnotationCornerBottomRight = "corner_bottom_right"
	AnnotationHorizontal        = "horz"
	AnnotationVertical          = "vert"

	// TransitionPrefix starts the annotation on corridors joining two quadrants
	TransitionPrefix = "transition-"
)

// Cell is one tile of the map
type Cell struct {
	Point       world.Point
	Terrain     Terrain
	RoomID      string
	Annotations mapset.Set[string]
	Feature     Feature
	Debug       rune
}

func newCell(p world.Point) Cell {
	return Cell{
		Point:       p,
		Annotations: mapset.New[string](),
	}
}

// HasAnnotation returns true if the cell carries annotation a
func (c *Cell) HasAnnotation(a string) bool {
	return c.Annotations.Has(a)
}

// Annotate adds a free-form tag to the cell
func (c *Cell) Annotate(a string) {
	c.Annotations.Put(a)
}

// Transition returns the transition annotation of the cell, if any
func (c *Cell) Transition() (string, bool) {
	found := ""
	c.Annotations.Each(func(a string) {
		if found == "" && strings.HasPrefix(a, TransitionPrefix) {
			found = a
		}
	})
	return found, found != ""
}

// InRoom returns true if the cell belongs to a room
func (c *Cell) InRoom() bool {
	return c.RoomID != ""
}
