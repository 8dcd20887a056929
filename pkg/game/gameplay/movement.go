package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"basement/pkg/engine/world"
	"basement/pkg/game/state"
)

const (
	// ThrowDistance pushes the throw target far past anything on the map so
	// the projectile flies until it hits something
	ThrowDistance = 1000
	// ThrowSpeed is how many cells a player's throw covers per turn
	ThrowSpeed = 2
)

// target returns the cell next to the player in direction d
func target(g *state.Game, d world.Direction) (world.Point, bool) {
	pos, ok := g.Level.Player().Pos()
	if !ok || !d.IsValid() {
		return world.Point{}, false
	}
	return pos.Add(d.Delta()), true
}

// Move steps, attacks or opens a door in direction d. Bumps are reported
// through the level's events.
func Move(g *state.Game, d world.Direction) bool {
	p, ok := target(g, d)
	if !ok {
		return false
	}
	return g.Level.Move(g.Level.Player(), p)
}

// Pickup collects whatever lies under the player
func Pickup(g *state.Game) bool {
	if !g.Level.PickupItem(g.Level.Player()) {
		g.AddMessage(gotext.Get("NOTHING_HERE"))
		return false
	}
	return true
}

// Throw hurls the first carried item in direction d
func Throw(g *state.Game, d world.Direction) bool {
	player := g.Level.Player()
	if len(player.Inventory) == 0 {
		g.AddMessage(gotext.Get("NOTHING_TO_THROW"))
		return false
	}
	pos, ok := player.Pos()
	if !ok || !d.IsValid() {
		return false
	}
	to := pos.Add(d.Delta().Scale(ThrowDistance))
	if !g.Level.ThrowItem(player, player.Inventory[0], to, ThrowSpeed) {
		g.AddMessage(gotext.Get("CANNOT_THROW"))
		return false
	}
	return true
}

// CloseDoor shuts the open door in direction d
func CloseDoor(g *state.Game, d world.Direction) bool {
	p, ok := target(g, d)
	if !ok || !g.Level.CloseDoor(g.Level.Player(), p) {
		g.AddMessage(gotext.Get("NO_DOOR"))
		return false
	}
	return true
}
