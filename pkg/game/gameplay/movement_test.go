package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "basement/pkg/engine/input"
	"basement/pkg/engine/world"
	"basement/pkg/game/behavior"
	"basement/pkg/game/level/leveltest"
	"basement/pkg/game/state"
)

// makeGame creates a Game on a hand-drawn map
func makeGame(t *testing.T, rows ...string) *state.Game {
	t.Helper()
	g := state.NewGame(leveltest.New(t, behavior.Default(), rows...))
	g.ClearMessages()
	return g
}

func playerPos(t *testing.T, g *state.Game) world.Point {
	t.Helper()
	p, ok := g.Level.Player().Pos()
	require.True(t, ok)
	return p
}

var openRoom = []string{
	"#####",
	"#...#",
	"#.@.#",
	"#...#",
	"#####",
}

func TestProcessIntent_AllEightDirections(t *testing.T) {
	center := world.Pt(2, 2)
	for _, d := range world.AllDirections() {
		t.Run(d.String(), func(t *testing.T) {
			g := makeGame(t, openRoom...)
			ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMove, Direction: d})
			assert.Equal(t, center.Add(d.Delta()), playerPos(t, g))
			assert.Equal(t, 1, g.Turn)
		})
	}
}

func TestProcessIntent_BlockedMoveDoesNotTakeTurn(t *testing.T) {
	g := makeGame(t, "###", "#@#", "###")
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMove, Direction: world.East})
	assert.Equal(t, world.Pt(1, 1), playerPos(t, g))
	assert.Zero(t, g.Turn)
	assert.Equal(t, "You bump into something solid.", g.LastMessage())
}

func TestProcessIntent_NoneIsIgnored(t *testing.T) {
	g := makeGame(t, openRoom...)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNone})
	assert.Zero(t, g.Turn)
	assert.Empty(t, g.Messages)
}

func TestProcessIntent_MonstersActAfterIntent(t *testing.T) {
	g := makeGame(t, "######", "#@...#", "######")
	leveltest.Spawn(t, g.Level, "CHASER", world.Pt(2, 1))

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionWait})
	assert.Equal(t, 19, g.Level.Player().State.HP)
	assert.Equal(t, 1, g.Turn)
}

func TestThrow_FirstItemAtSpeedTwo(t *testing.T) {
	g := makeGame(t, "########", "#@.....#", "########")
	first := g.Level.Player().Inventory[0]

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionThrow, Direction: world.East})
	player := g.Level.Player()
	require.Len(t, player.Inventory, 1)
	assert.NotSame(t, first, player.Inventory[0])

	all := g.Level.Entities()
	require.Len(t, all, 2)
	projectile := all[1]
	assert.Equal(t, ThrowSpeed, projectile.Scratch.Speed)
	require.Len(t, projectile.Inventory, 1)
	assert.Same(t, first, projectile.Inventory[0])
	assert.Equal(t, 1, g.Turn)
}

func TestThrow_NothingToThrow(t *testing.T) {
	g := makeGame(t, openRoom...)
	g.Level.Player().Inventory = nil
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionThrow, Direction: world.North})
	assert.Equal(t, "You have nothing to throw.", g.LastMessage())
	assert.Zero(t, g.Turn)
}

func TestThrow_IntoWall(t *testing.T) {
	g := makeGame(t, "###", "#@#", "###")
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionThrow, Direction: world.West})
	assert.Equal(t, "You cannot throw that way.", g.LastMessage())
	assert.Len(t, g.Level.Player().Inventory, 2)
}

func TestCloseDoor(t *testing.T) {
	g := makeGame(t, "#####", "#@'.#", "#####")

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionCloseDoor, Direction: world.South})
	assert.Equal(t, "There is no open door there.", g.LastMessage())
	assert.Zero(t, g.Turn)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionCloseDoor, Direction: world.East})
	assert.Equal(t, "You close the door.", g.LastMessage())
	assert.Equal(t, 1, g.Turn)
}

func TestPickup_NothingHere(t *testing.T) {
	g := makeGame(t, openRoom...)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionPickup})
	assert.Equal(t, "There is nothing here to pick up.", g.LastMessage())
	assert.Zero(t, g.Turn)
}

func TestQuit_EndsSession(t *testing.T) {
	g := makeGame(t, openRoom...)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})
	assert.True(t, g.Quit)
	assert.True(t, g.Over())

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMove, Direction: world.North})
	assert.Equal(t, world.Pt(2, 2), playerPos(t, g))
	assert.Equal(t, "The game is over.", g.LastMessage())
}

func TestShowHelp(t *testing.T) {
	g := makeGame(t, openRoom...)
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionHelp})
	require.Len(t, g.Messages, 3)
	assert.Contains(t, g.Messages[0], "Move: ")
	assert.Contains(t, g.Messages[1], "Throw <dir>: t throw")
	assert.Zero(t, g.Turn)
}
