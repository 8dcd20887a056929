package behavior

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
)

// onTurn is embedded by behaviors that act once per player turn
type onTurn struct{}

func (onTurn) Interests() []events.Kind {
	return []events.Kind{events.PlayerTookAction}
}

func (onTurn) Local(events.Kind) bool {
	return false
}

// Sleep claims every turn and does nothing. It ends chains.
type Sleep struct{ onTurn }

// Handle claims the turn
func (Sleep) Handle(_ *level.Level, self *entities.Entity, _ events.Event) bool {
	self.Mode = entities.ModeDefault
	return true
}

const stunCounter = "stun_cooldown"

// Stunnable makes an entity lose Turns turns after being hit
type Stunnable struct {
	Turns int
}

// Interests returns the kinds Stunnable reacts to
func (s *Stunnable) Interests() []events.Kind {
	return []events.Kind{events.EntityAttacked, events.PlayerTookAction}
}

// Local is true for attacks on this entity
func (s *Stunnable) Local(kind events.Kind) bool {
	return kind == events.EntityAttacked
}

// Handle starts the stun on a hit and burns turns while it lasts
func (s *Stunnable) Handle(_ *level.Level, self *entities.Entity, ev events.Event) bool {
	switch ev.Kind {
	case events.EntityAttacked:
		self.Scratch.SetCounter(stunCounter, s.Turns)
		self.Mode = entities.ModeStunned
		return true
	case events.PlayerTookAction:
		left, _ := self.Scratch.Counter(stunCounter)
		if left > 0 {
			self.Scratch.SetCounter(stunCounter, left-1)
			return true
		}
	}
	return false
}

// RandomWalk wanders to a random neighbour while the player is near and
// dozes otherwise
type RandomWalk struct {
	onTurn
	SleepDistance int
}

// Handle moves to a random passable neighbour
func (r *RandomWalk) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	pos, ok := self.Pos()
	if !ok {
		return false
	}
	ppos, ok := l.Player().Pos()
	if !ok || pos.ManhattanDistance(ppos) > r.SleepDistance {
		self.Mode = entities.ModeSleeping
		return true
	}
	self.Mode = entities.ModeDefault

	candidates := l.PassableNeighbors(self)
	if len(candidates) == 0 {
		return false
	}
	l.Move(self, candidates[l.Rand().Intn(len(candidates))])
	return true
}

// Beeline charges the player while it can see them
type Beeline struct{ onTurn }

// Handle steps to the neighbour closest to the player, attacking if that is
// the player's cell
func (Beeline) Handle(l *level.Level, self *entities.Entity, _ events.Event) bool {
	player := l.Player()
	if !l.HasLineOfSight(self, player) {
		return false
	}
	ppos, _ := player.Pos()
	target, ok := ppos.ClosestPoint(l.PassableNeighbors(self))
	if !ok {
		return false
	}
	self.Mode = entities.ModeChasing
	l.Move(self, target)
	return true
}
