package devtools

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basement/pkg/engine/world"
	"basement/pkg/game/behavior"
	"basement/pkg/game/content"
	"basement/pkg/game/entities"
	"basement/pkg/game/generator"
	"basement/pkg/game/level/leveltest"
	gameworld "basement/pkg/game/world"
)

func TestRenderLevel_Layers(t *testing.T) {
	l := leveltest.New(t, behavior.Default(),
		"######",
		"#@..>#",
		"######",
	)
	leveltest.Spawn(t, l, "DUMMY", world.Pt(2, 1))
	rock, ok := l.Tables().Item("ROCK")
	require.True(t, ok)
	l.DropItem(entities.NewItem(rock), world.Pt(3, 1), nil)

	got := RenderLevel(l, RenderOptions{})
	assert.Equal(t, "------\n-@d*>-\n------\n", got)
}

func TestRenderLevel_Fog(t *testing.T) {
	l := leveltest.New(t, behavior.Default(),
		"#######",
		"#@.#..#",
		"#######",
	)
	lines := strings.Split(RenderLevel(l, RenderOptions{Fog: true}), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "-@.-   ", lines[1])
}

func TestRenderLevel_Color(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), "###", "#@#", "###")
	plain := RenderLevel(l, RenderOptions{})
	colored := RenderLevel(l, RenderOptions{Color: true})
	assert.NotContains(t, plain, "\x1b[")
	assert.GreaterOrEqual(t, len(colored), len(plain))
}

func TestTerrainGlyph(t *testing.T) {
	tm := gameworld.NewTileMap(world.Size{W: 3, H: 1}, gameworld.DefaultTerrain())
	wall := tm.Cell(world.Pt(0, 0))
	wall.Terrain = gameworld.TerrainWall
	wall.Annotate(gameworld.AnnotationVertical)
	corridor := tm.Cell(world.Pt(1, 0))
	corridor.Terrain = gameworld.TerrainCorridor
	stairs := tm.Cell(world.Pt(2, 0))
	stairs.Terrain = gameworld.TerrainFloor
	stairs.Feature = gameworld.FeatureStairsDown

	assert.Equal(t, '|', TerrainGlyph(wall))
	assert.Equal(t, '#', TerrainGlyph(corridor))
	assert.Equal(t, '>', TerrainGlyph(stairs))
	assert.Equal(t, ' ', TerrainGlyph(nil))
}

func TestViewport(t *testing.T) {
	bounds := world.Rect{W: 100, H: 60}
	assert.Equal(t, world.Rect{X: 0, Y: 0, W: 20, H: 10}, viewport(bounds, world.Pt(2, 2), 20, 10))
	assert.Equal(t, world.Rect{X: 80, Y: 50, W: 20, H: 10}, viewport(bounds, world.Pt(99, 59), 20, 10))
	assert.Equal(t, world.Rect{X: 40, Y: 25, W: 20, H: 10}, viewport(bounds, world.Pt(50, 30), 20, 10))
	assert.Equal(t, bounds, viewport(bounds, world.Pt(50, 30), 0, 0))
	assert.Equal(t, bounds, viewport(bounds, world.Pt(50, 30), 200, 100))
}

func TestRenderMap_Generated(t *testing.T) {
	tables, err := content.Default()
	require.NoError(t, err)
	tm, err := generator.Generate(generator.Options{
		Size:   world.Size{W: 60, H: 40},
		Tables: tables,
		Rand:   rand.New(rand.NewSource(5)),
	})
	require.NoError(t, err)

	out := RenderMap(tm, RenderOptions{})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 40)
	for _, line := range lines {
		assert.Len(t, []rune(line), 60)
	}
	assert.Contains(t, out, "$", "every room holds gold")

	clipped := RenderMap(tm, RenderOptions{Width: 20, Height: 10})
	assert.Len(t, strings.Split(strings.TrimSuffix(clipped, "\n"), "\n"), 10)
}

func TestDumpToFile(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), "#####", "#@.>#", "#####")
	path := filepath.Join(t.TempDir(), "dump.txt")

	written, err := DumpToFile(l, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	dump := string(data)
	assert.Contains(t, dump, "player: 1,1\n")
	assert.Contains(t, dump, "player_hp: 20/20\n")
	assert.Contains(t, dump, "--- Entities ---\n  id: 1 type: PLAYER at: 1,1")
}
