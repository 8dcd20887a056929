package behavior

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
)

// PathUntilHit flies a projectile along its precomputed path, Speed steps
// per turn. The projectile lands when it hits something, meets a wall or
// runs out of path: the carried item drops where it stands and the
// projectile is removed.
type PathUntilHit struct{ onTurn }

// Handle advances the projectile
func (PathUntilHit) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	speed := self.Scratch.Speed
	if speed < 1 {
		speed = 1
	}
	for i := 0; i < speed && self.Alive(); i++ {
		if !advance(l, self) {
			break
		}
	}
	return true
}

// advance takes one step and reports whether the projectile may keep moving
// this turn
func advance(l *level.Level, self *entities.Entity) bool {
	if len(self.Scratch.Path) == 0 {
		land(l, self)
		return false
	}
	step := self.Scratch.Path[0]
	self.Scratch.Path = self.Scratch.Path[1:]
	if step.Wait {
		return false
	}

	if target := l.EntityAt(step.Point); target != nil && target != self {
		l.Attack(self, target)
		land(l, self)
		return false
	}
	if !l.TerrainPassable(step.Point) {
		land(l, self)
		return false
	}
	l.Move(self, step.Point)
	return true
}

func land(l *level.Level, self *entities.Entity) {
	pos, ok := self.Pos()
	if !ok {
		return
	}
	cargo := self.Inventory
	self.Inventory = nil
	for _, item := range cargo {
		l.DropItem(item, pos, self)
	}
	l.RemoveEntity(self)
}
