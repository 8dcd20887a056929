package behavior

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
)

// PickUpItems collects ItemID from the ground: it picks up what lies under
// the entity, or steps onto an adjacent cell holding one
type PickUpItems struct {
	onTurn
	ItemID string
}

// Handle grabs or approaches a matching item
func (p *PickUpItems) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	pos, ok := self.Pos()
	if !ok {
		return false
	}
	if p.holds(l.ItemsAt(pos)) {
		self.Mode = entities.ModeDefault
		return l.PickupItem(self)
	}
	for _, n := range l.PassableNeighbors(self) {
		if l.EntityAt(n) == nil && p.holds(l.ItemsAt(n)) {
			self.Mode = entities.ModeDefault
			return l.Move(self, n)
		}
	}
	return false
}

func (p *PickUpItems) holds(items []*entities.Item) bool {
	for _, it := range items {
		if it.Type.ID == p.ItemID {
			return true
		}
	}
	return false
}
