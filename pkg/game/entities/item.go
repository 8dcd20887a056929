package entities

import (
	"basement/pkg/engine/world"
	"basement/pkg/game/content"
)

// Item is a thing lying on the ground or carried by an entity
type Item struct {
	Type     *content.ItemType
	Position *world.Point // nil while carried
}

// NewItem creates a carried item
func NewItem(it *content.ItemType) *Item {
	return &Item{Type: it}
}

// IsGold returns true for the score item
func (i *Item) IsGold() bool {
	return i.Type.IsGold()
}

// OnGround returns true if the item lies on the map
func (i *Item) OnGround() bool {
	return i.Position != nil
}

// Place puts the item on the ground at p
func (i *Item) Place(p world.Point) {
	i.Position = &p
}

// Lift marks the item as carried
func (i *Item) Lift() {
	i.Position = nil
}
