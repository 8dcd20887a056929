// Package events is the deferred publish/subscribe queue that carries every
// state change of a level to behaviors and to the presentation layer.
package events

import (
	"basement/pkg/engine/world"
	"basement/pkg/game/entities"
)

// Kind identifies an event. The set is closed.
type Kind int

// Event kinds
const (
	KindNone Kind = iota
	DoorOpen
	DoorClosed
	EntityAttacked
	EntityAttacking
	EntityBumped
	EntityDied
	EntityDroppedItem
	EntityHealed
	EntityMoved
	EntityPickedUpItem
	EntityTookDamage
	LevelExited
	PlayerTookAction
	ScoreIncreased

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:           "none",
	DoorOpen:           "door_open",
	DoorClosed:         "door_closed",
	EntityAttacked:     "entity_attacked",
	EntityAttacking:    "entity_attacking",
	EntityBumped:       "entity_bumped",
	EntityDied:         "entity_died",
	EntityDroppedItem:  "entity_dropped_item",
	EntityHealed:       "entity_healed",
	EntityMoved:        "entity_moved",
	EntityPickedUpItem: "entity_picked_up_item",
	EntityTookDamage:   "entity_took_damage",
	LevelExited:        "level_exited",
	PlayerTookAction:   "player_took_action",
	ScoreIncreased:     "score_increased",
}

// String returns the snake_case event name
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// AllKinds returns every real event kind
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Event is one queued occurrence. Source is the entity the event is about;
// NoID makes it global. Other is the counterpart in two-party events: the
// attacker for entity_attacked, the defender for entity_attacking.
type Event struct {
	Kind   Kind
	Source entities.ID
	Other  entities.ID
	Item   *entities.Item
	Point  world.Point
}

// Listener receives events. Listeners are compared with == on unsubscribe,
// so implementations should be pointers.
type Listener interface {
	HandleEvent(ev Event)
}
