package level

import (
	"basement/pkg/engine/world"
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	gameworld "basement/pkg/game/world"

	"go.uber.org/zap"
)

// playerTookAction ticks the clock that drives every monster, unless the
// player is already dead
func (l *Level) playerTookAction(p world.Point) {
	if l.player.Alive() {
		l.fire(events.Event{Kind: events.PlayerTookAction, Point: p})
	}
}

// Move steps e onto target. An occupied target is an attack: the player may
// attack anyone, monsters only the player. A closed door is opened by the
// player. Anything else is a bump. Returns false when nothing happened.
func (l *Level) Move(e *entities.Entity, target world.Point) bool {
	pos, ok := e.Pos()
	if !ok || pos == target {
		return false
	}

	if other := l.EntityAt(target); other != nil {
		switch {
		case e.IsPlayer():
			l.Attack(e, other)
			l.playerTookAction(target)
			l.UpdateVisibility()
			return true
		case other.IsPlayer():
			l.Attack(e, other)
			return true
		default:
			return false
		}
	}

	if l.tm.Passable(target) {
		l.relocate(e, target)
		l.fire(events.Event{Kind: events.EntityMoved, Source: e.ID, Point: target})
		if e.IsPlayer() {
			l.playerEntered(target)
			l.playerTookAction(target)
			l.UpdateVisibility()
		}
		return true
	}

	if l.tm.Terrain(target) == gameworld.TerrainDoorClosed && l.CanOpenDoors(e) {
		l.tm.SetTerrain(target, gameworld.TerrainDoorOpen)
		l.fire(events.Event{Kind: events.DoorOpen, Source: e.ID, Point: target})
		if e.IsPlayer() {
			l.playerTookAction(target)
			l.UpdateVisibility()
		}
		return true
	}

	l.fire(events.Event{Kind: events.EntityBumped, Source: e.ID, Point: target})
	return false
}

// playerEntered handles the cues on the cell the player just stepped onto
func (l *Level) playerEntered(p world.Point) {
	c := l.tm.Cell(p)
	if c == nil {
		return
	}
	if _, ok := c.Transition(); ok && l.player.State.HP < l.player.Stats.HPMax {
		l.player.State.HP = l.player.Stats.HPMax
		l.fire(events.Event{Kind: events.EntityHealed, Source: l.player.ID, Point: p})
	}
	if c.Feature == gameworld.FeatureStairsDown {
		l.fire(events.Event{Kind: events.LevelExited, Source: l.player.ID, Point: p})
	}
}

// Attack resolves one blow: defender loses exactly attacker.Strength hp and
// dies at zero
func (l *Level) Attack(attacker, defender *entities.Entity) {
	p, ok := defender.Pos()
	if !ok {
		return
	}
	l.fire(events.Event{Kind: events.EntityAttacking, Source: attacker.ID, Other: defender.ID, Point: p})
	l.fire(events.Event{Kind: events.EntityAttacked, Source: defender.ID, Other: attacker.ID, Point: p})
	defender.State.HP -= attacker.Stats.Strength
	l.fire(events.Event{Kind: events.EntityTookDamage, Source: defender.ID, Other: attacker.ID, Point: p})
	if defender.State.HP <= 0 {
		l.kill(defender, p)
	}
}

// kill removes e and drops what it carried. The player's death cuts the
// drain off after the events queued so far, so the killing blow and the
// death itself are still delivered but nothing reacts to them.
func (l *Level) kill(e *entities.Entity, p world.Point) {
	l.fire(events.Event{Kind: events.EntityDied, Source: e.ID, Point: p})
	l.RemoveEntity(e)
	inventory := e.Inventory
	e.Inventory = nil
	for _, item := range inventory {
		l.DropItem(item, p, e)
	}
	if e.IsPlayer() {
		l.dead = true
		l.log.Debug("player died", zap.Stringer("at", p))
		l.dispatcher.Abandon()
		l.UpdateVisibility()
	}
}

// ThrowItem launches item from thrower's inventory toward target. The item
// rides a projectile entity that starts on the first cell of the line not
// occupied by the thrower, waits out the current turn, then follows the rest
// of the line at speed cells per turn.
func (l *Level) ThrowItem(thrower *entities.Entity, item *entities.Item, target world.Point, speed int) bool {
	pos, ok := thrower.Pos()
	if !ok || pos == target {
		return false
	}
	if !containsItem(thrower.Inventory, item) {
		return false
	}
	flyer, ok := l.tables.InFlight(item.Type.ID)
	if !ok {
		return false
	}

	path := world.Line(pos, target)
	for len(path) > 0 && l.EntityAt(path[0]) == thrower {
		path = path[1:]
	}
	if len(path) == 0 {
		return false
	}
	first := path[0]
	if l.EntityAt(first) != nil || !l.tm.Passable(first) {
		return false
	}

	projectile, err := l.CreateEntity(flyer, first)
	if err != nil {
		l.log.Warn("cannot launch projectile", zap.String("type", flyer.ID), zap.Error(err))
		return false
	}
	thrower.RemoveItem(item)
	item.Lift()

	steps := make([]entities.Step, 0, len(path))
	steps = append(steps, entities.Step{Wait: true})
	for _, p := range path[1:] {
		steps = append(steps, entities.Step{Point: p})
	}
	projectile.Scratch.Path = steps
	projectile.Scratch.Speed = speed
	projectile.Stats.Strength = thrower.Stats.Strength
	projectile.Inventory = append(projectile.Inventory, item)

	if thrower.IsPlayer() {
		l.playerTookAction(pos)
	}
	return true
}

func containsItem(items []*entities.Item, item *entities.Item) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}

// PickupItem gathers everything on e's cell. The player turns gold into
// score; other entities leave gold where it lies. Returns false if nothing
// was collected.
func (l *Level) PickupItem(e *entities.Entity) bool {
	pos, ok := e.Pos()
	if !ok {
		return false
	}
	ground := l.items[pos]
	if len(ground) == 0 {
		return false
	}

	var left []*entities.Item
	collected := false
	for _, item := range ground {
		if item.IsGold() {
			if !e.IsPlayer() {
				left = append(left, item)
				continue
			}
			item.Lift()
			l.score++
			l.fire(events.Event{Kind: events.ScoreIncreased, Other: e.ID, Item: item, Point: pos})
			collected = true
			continue
		}
		item.Lift()
		e.Inventory = append(e.Inventory, item)
		l.fire(events.Event{Kind: events.EntityPickedUpItem, Source: e.ID, Item: item, Point: pos})
		collected = true
	}

	if len(left) > 0 {
		l.items[pos] = left
	} else {
		delete(l.items, pos)
	}
	if collected && e.IsPlayer() {
		l.playerTookAction(pos)
	}
	return collected
}

// CloseDoor shuts the open door at p. Fails if p is not an open door or
// something stands in the doorway.
func (l *Level) CloseDoor(e *entities.Entity, p world.Point) bool {
	if !e.Alive() || l.tm.Terrain(p) != gameworld.TerrainDoorOpen || l.EntityAt(p) != nil {
		return false
	}
	l.tm.SetTerrain(p, gameworld.TerrainDoorClosed)
	l.fire(events.Event{Kind: events.DoorClosed, Source: e.ID, Point: p})
	if e.IsPlayer() {
		l.playerTookAction(p)
	}
	l.UpdateVisibility()
	return true
}

// Wait spends the player's turn without acting
func (l *Level) Wait() bool {
	pos, ok := l.player.Pos()
	if !ok {
		return false
	}
	l.playerTookAction(pos)
	return true
}
