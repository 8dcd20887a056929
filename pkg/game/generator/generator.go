package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
	gameworld "basement/pkg/game/world"

	"go.uber.org/zap"
)

// LevelGenerator is an interface for map generation algorithms
type LevelGenerator interface {
	Generate(opts Options) (*gameworld.TileMap, error)
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator LevelGenerator = BSP

// Constants for BSP generation
const (
	minNodeSize       = 8  // Minimum size of a BSP node
	minRoomSize       = 5  // Minimum size of a random-box room, walls included
	maxCorridorDoors  = 4  // Corridors crossing more walls are re-rolled
	maxCorridorRolls  = 10 // Attempts before keeping the last corridor
	maxPlacementTries = 10 // Free-cell attempts per monster or item
	stairsCandidates  = 10 // Interior points sampled for each staircase
)

// ErrMapTooSmall is returned when the map cannot hold four quadrants of rooms
var ErrMapTooSmall = errors.New("map too small")

// Options configures one generation run
type Options struct {
	Size world.Size
	// MinLeaf is the smallest BSP leaf side; 0 means the default
	MinLeaf int
	// DoorsOpen carves every door open, for debugging
	DoorsOpen bool
	// EngraveDivisions marks BSP leaf borders with their depth in Cell.Debug
	EngraveDivisions bool
	Tables           *content.Tables
	Terrain          gameworld.TerrainTable
	Rand             *rand.Rand
	Logger           *zap.Logger
}

func (o Options) withDefaults() (Options, error) {
	if o.Tables == nil {
		return o, errors.New("generator: content tables are required")
	}
	if o.Size.W < minRoomSize*2 || o.Size.H < minRoomSize*2 {
		return o, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrMapTooSmall, o.Size.W, o.Size.H, minRoomSize*2, minRoomSize*2)
	}
	if o.MinLeaf <= 0 {
		o.MinLeaf = minNodeSize
	}
	if o.MinLeaf < minRoomSize {
		o.MinLeaf = minRoomSize
	}
	if o.Terrain == (gameworld.TerrainTable{}) {
		o.Terrain = gameworld.DefaultTerrain()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// Generate builds a populated tile map with the default generator
func Generate(opts Options) (*gameworld.TileMap, error) {
	return DefaultGenerator.Generate(opts)
}

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// run carries the state of one generation
type run struct {
	opts Options
	rng  *rand.Rand
	log  *zap.Logger
	tm   *gameworld.TileMap
	root *bspNode
}

// Generate creates a new level using the BSP algorithm. The result depends
// only on opts and the state of opts.Rand.
func (g *BSPGenerator) Generate(opts Options) (*gameworld.TileMap, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	r := &run{
		opts: opts,
		rng:  opts.Rand,
		log:  opts.Logger,
		tm:   gameworld.NewTileMap(opts.Size, opts.Terrain),
	}

	r.root = newBSPTree(r.rng, r.tm.Bounds(), opts.MinLeaf)

	if err := r.createRooms(); err != nil {
		return nil, err
	}
	r.engraveRooms()
	if opts.EngraveDivisions {
		r.engraveDivisions()
	}
	r.connectSiblings()
	r.connectQuadrants()
	r.placeStairs()
	r.placeMonsters()
	r.placeItems()

	r.log.Debug("generated level",
		zap.Int("width", opts.Size.W),
		zap.Int("height", opts.Size.H),
		zap.Int("rooms", len(r.tm.Rooms())),
		zap.Int("corridors", len(r.tm.Corridors)),
		zap.Int("monsters", len(r.tm.POI.Monsters)),
		zap.Int("items", len(r.tm.POI.Items)),
	)
	return r.tm, nil
}

// engraveDivisions writes the depth of every leaf along its border
func (r *run) engraveDivisions() {
	for _, leaf := range r.root.leaves() {
		glyph := rune('0' + leaf.depth%10)
		rect := leaf.rect
		for _, p := range rect.Points() {
			if p.X == rect.X || p.Y == rect.Y {
				r.tm.Cell(p).Debug = glyph
			}
		}
	}
}
