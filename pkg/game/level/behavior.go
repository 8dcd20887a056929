package level

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
)

// Behavior is the AI attached to one entity. A behavior reacts to the event
// kinds it declares; Local kinds are only delivered when the entity itself
// is the event source (or the event is global). Handle returns true to claim
// the event.
type Behavior interface {
	Interests() []events.Kind
	Local(kind events.Kind) bool
	Handle(l *Level, self *entities.Entity, ev events.Event) bool
}

// Registry turns the behavior ids listed on a monster type into a Behavior
type Registry interface {
	Build(ids []string) (Behavior, error)
}

// behaviorListener connects one entity's behavior to the dispatcher. It holds
// the entity handle and resolves it on every event.
type behaviorListener struct {
	level    *Level
	id       entities.ID
	behavior Behavior
}

func (b *behaviorListener) HandleEvent(ev events.Event) {
	e := b.level.Entity(b.id)
	if e == nil {
		return
	}
	b.behavior.Handle(b.level, e, ev)
}

func (b *behaviorListener) filterFor(kind events.Kind) entities.ID {
	if b.behavior.Local(kind) {
		return b.id
	}
	return entities.NoID
}

func (b *behaviorListener) subscribe(d *events.Dispatcher) {
	for _, k := range b.behavior.Interests() {
		d.Subscribe(b, k, b.filterFor(k))
	}
}

func (b *behaviorListener) unsubscribe(d *events.Dispatcher) {
	for _, k := range b.behavior.Interests() {
		d.Unsubscribe(b, k, b.filterFor(k))
	}
}
