// Package leveltest builds small hand-drawn levels for tests.
//
// Map legend:
//
//	' '  rock          '#'  wall
//	'.'  floor         ','  corridor
//	'+'  closed door   '\'' open door
//	'='  corridor tagged as a tier transition
//	'@'  floor, player start (stairs up)
//	'>'  floor with stairs down
package leveltest

import (
	"math/rand"
	"testing"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
	gameworld "basement/pkg/game/world"

	"github.com/stretchr/testify/require"
)

// Content is a compact table set for simulation tests
const Content = `
items:
  - {id: ROCK, char: "*", chance_by_difficulty: [1, 1, 1, 1]}
  - {id: GOLD, char: "$", chance_by_difficulty: [0, 0, 0, 0]}
monsters:
  - {id: PLAYER, char: "@", hp_max: 20, strength: 5, items: [ROCK, ROCK]}
  - {id: ROCK_IN_FLIGHT, char: "*", hp_max: 1, strength: 1, behaviors: [path_until_hit]}
  - {id: DUMMY, char: d, hp_max: 5, strength: 1, items: [ROCK]}
  - {id: TANK, char: T, hp_max: 50, strength: 1}
  - {id: BRUTE, char: B, hp_max: 5, strength: 100}
  - {id: WALKER, char: w, hp_max: 5, strength: 1, behaviors: [random_walk]}
  - {id: CHASER, char: c, hp_max: 5, strength: 1, behaviors: [stunnable, beeline_visible, sleep]}
  - {id: ARCHER, char: a, hp_max: 5, strength: 1, behaviors: [range_5_visible, throw_rock_slow, sleep], items: [ROCK, ROCK]}
  - {id: SCAVENGER, char: s, hp_max: 5, strength: 1, behaviors: [pick_up_rocks, sleep]}
`

// Tables loads Content
func Tables(t testing.TB) *content.Tables {
	t.Helper()
	tables, err := content.Load([]byte(Content))
	require.NoError(t, err)
	return tables
}

// Map draws a tile map from rows of the legend. Every row must have the
// same width and exactly one '@' is required.
func Map(t testing.TB, rows ...string) *gameworld.TileMap {
	t.Helper()
	require.NotEmpty(t, rows)
	tm := gameworld.NewTileMap(world.Size{W: len(rows[0]), H: len(rows)}, gameworld.DefaultTerrain())

	start := 0
	for y, row := range rows {
		require.Len(t, row, len(rows[0]), "row %d", y)
		for x, ch := range row {
			p := world.Pt(x, y)
			c := tm.Cell(p)
			switch ch {
			case '#':
				c.Terrain = gameworld.TerrainWall
			case '.':
				c.Terrain = gameworld.TerrainFloor
			case ',':
				c.Terrain = gameworld.TerrainCorridor
			case '=':
				c.Terrain = gameworld.TerrainCorridor
				c.Annotate(gameworld.TransitionPrefix + "0-1")
			case '+':
				c.Terrain = gameworld.TerrainDoorClosed
			case '\'':
				c.Terrain = gameworld.TerrainDoorOpen
			case '@':
				c.Terrain = gameworld.TerrainFloor
				c.Feature = gameworld.FeatureStairsUp
				tm.POI.StairsUp = p
				start++
			case '>':
				c.Terrain = gameworld.TerrainFloor
				c.Feature = gameworld.FeatureStairsDown
				tm.POI.StairsDown = p
			}
		}
	}
	require.Equal(t, 1, start, "map needs exactly one '@'")
	return tm
}

// New builds a level from rows using the Content tables and registry
func New(t testing.TB, registry level.Registry, rows ...string) *level.Level {
	t.Helper()
	l, err := level.New(Map(t, rows...), Tables(t), registry, level.Options{
		Rand: rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return l
}

// Spawn creates a monster of content type id at p
func Spawn(t testing.TB, l *level.Level, id string, p world.Point) *entities.Entity {
	t.Helper()
	mt, ok := l.Tables().Monster(id)
	require.True(t, ok, id)
	e, err := l.CreateEntity(mt, p)
	require.NoError(t, err)
	return e
}

// Recorder collects events delivered by a level
type Recorder struct {
	Events []events.Event
}

// Listen subscribes r globally to kinds, or to every kind if none are given
func (r *Recorder) Listen(l *level.Level, kinds ...events.Kind) *Recorder {
	if len(kinds) == 0 {
		kinds = events.AllKinds()
	}
	for _, k := range kinds {
		l.Subscribe(r, k, entities.NoID)
	}
	return r
}

// HandleEvent records ev
func (r *Recorder) HandleEvent(ev events.Event) {
	r.Events = append(r.Events, ev)
}

// Count returns how many events of kind k were seen
func (r *Recorder) Count(k events.Kind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

// Kinds returns the kinds seen, in order
func (r *Recorder) Kinds() []events.Kind {
	out := make([]events.Kind, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Kind)
	}
	return out
}

// Reset forgets recorded events
func (r *Recorder) Reset() {
	r.Events = nil
}
