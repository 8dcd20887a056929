package level

import (
	"basement/pkg/engine/world"

	"github.com/zyedidia/generic/mapset"
)

// UpdateVisibility recomputes what the player sees and adds it to the
// remembered set. A dead player sees nothing.
func (l *Level) UpdateVisibility() {
	pos, ok := l.player.Pos()
	if !ok {
		l.visible = mapset.New[world.Point]()
		return
	}
	l.visible = world.VisiblePoints(pos, l.sight, l.CanSee)
	l.visible.Each(func(p world.Point) {
		l.seen.Put(p)
	})
}

// CanPlayerSee reports whether p is currently visible
func (l *Level) CanPlayerSee(p world.Point) bool {
	return l.visible.Has(p)
}

// CanPlayerRemember reports whether p has ever been visible
func (l *Level) CanPlayerRemember(p world.Point) bool {
	return l.seen.Has(p)
}

// VisibleCount returns the size of the current visibility set
func (l *Level) VisibleCount() int {
	return l.visible.Size()
}

// RememberedCount returns the size of the remembered set
func (l *Level) RememberedCount() int {
	return l.seen.Size()
}
