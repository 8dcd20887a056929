package behavior

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
)

// RangedKeepDistance holds the player at BestRange: it backs off when closer
// than BestRange-1, closes in when farther than BestRange, and otherwise
// yields so a ranged attack further down the chain can act.
type RangedKeepDistance struct {
	onTurn
	BestRange int
}

// Handle adjusts the distance to the player
func (r *RangedKeepDistance) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	player := l.Player()
	if !l.HasLineOfSight(self, player) {
		return false
	}
	pos, _ := self.Pos()
	ppos, _ := player.Pos()
	candidates := l.PassableNeighbors(self)
	if len(candidates) == 0 {
		return false
	}

	dist := pos.ManhattanDistance(ppos)
	switch {
	case dist < r.BestRange-1:
		target, _ := ppos.FarthestPoint(candidates)
		self.Mode = entities.ModeFleeing
		l.Move(self, target)
		return true
	case dist > r.BestRange:
		target, _ := ppos.ClosestPoint(candidates)
		self.Mode = entities.ModeChasing
		l.Move(self, target)
		return true
	default:
		return false
	}
}

const throwCounter = "throw_cooldown"

// ThrowProjectile throws ItemID at the player every Cooldown turns while the
// player is in sight
type ThrowProjectile struct {
	onTurn
	ItemID   string
	Speed    int
	Cooldown int
}

// Handle counts down and throws when ready
func (t *ThrowProjectile) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	player := l.Player()
	if !l.HasLineOfSight(self, player) {
		return false
	}

	left, ok := self.Scratch.Counter(throwCounter)
	if !ok {
		left = 1
	}
	left--
	self.Scratch.SetCounter(throwCounter, left)
	if left > 0 {
		return false
	}

	item := self.FindItem(t.ItemID)
	if item == nil {
		return false
	}
	ppos, _ := player.Pos()
	if !l.ThrowItem(self, item, ppos, t.Speed) {
		return false
	}
	self.Scratch.SetCounter(throwCounter, t.Cooldown)
	return true
}
