// Package behavior implements the monster AI: small strategies that react to
// level events, chained in priority order per entity.
package behavior

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"

	"github.com/zyedidia/generic/mapset"
)

// Composite tries its behaviors in order; the first to claim an event stops
// the chain.
type Composite struct {
	subs      []level.Behavior
	interests []events.Kind
}

// NewComposite chains subs in priority order
func NewComposite(subs ...level.Behavior) *Composite {
	c := &Composite{subs: subs}
	seen := mapset.New[events.Kind]()
	for _, sub := range subs {
		for _, k := range sub.Interests() {
			if !seen.Has(k) {
				seen.Put(k)
				c.interests = append(c.interests, k)
			}
		}
	}
	return c
}

// Interests returns the union of the sub-behavior interests
func (c *Composite) Interests() []events.Kind {
	return c.interests
}

// Local is true only if every sub-behavior interested in kind is local
func (c *Composite) Local(kind events.Kind) bool {
	interested := false
	for _, sub := range c.subs {
		if !wants(sub, kind) {
			continue
		}
		interested = true
		if !sub.Local(kind) {
			return false
		}
	}
	return interested
}

// Handle walks the chain. Local sub-behaviors skip events about other entities.
func (c *Composite) Handle(l *level.Level, self *entities.Entity, ev events.Event) bool {
	for _, sub := range c.subs {
		if !wants(sub, ev.Kind) {
			continue
		}
		if sub.Local(ev.Kind) && ev.Source != entities.NoID && ev.Source != self.ID {
			continue
		}
		if sub.Handle(l, self, ev) {
			return true
		}
	}
	return false
}

func wants(b level.Behavior, kind events.Kind) bool {
	for _, k := range b.Interests() {
		if k == kind {
			return true
		}
	}
	return false
}
