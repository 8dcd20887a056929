// Package content holds the immutable lookup tables for monsters, items,
// rooms and terrain. Tables are loaded once, before any level exists, and are
// never mutated afterwards.
package content

import "errors"

// Well-known ids the simulation depends on.
const (
	PlayerID = "PLAYER"
	GoldID   = "GOLD"

	// InFlightSuffix names the monster type used for a thrown item:
	// ROCK in flight is ROCK_IN_FLIGHT.
	InFlightSuffix = "_IN_FLIGHT"
)

// Difficulty tiers run from 0 to MaxDifficulty inclusive.
const (
	DifficultyTiers = 4
	MaxDifficulty   = DifficultyTiers - 1
)

// ErrUnknownID is returned when a table references an id that does not exist.
var ErrUnknownID = errors.New("unknown content id")

// RoomShape controls how a room fills its BSP leaf.
type RoomShape string

// Room shapes
const (
	ShapeRandomBox RoomShape = "random-box"
	ShapeFullBox   RoomShape = "full-box"
)

// MonsterType describes a kind of entity. Difficulty nil matches any tier.
type MonsterType struct {
	ID         string   `yaml:"id"`
	Char       string   `yaml:"char"`
	Color      string   `yaml:"color"`
	Difficulty *int     `yaml:"difficulty"`
	Chance     float64  `yaml:"chance"`
	Behaviors  []string `yaml:"behaviors"`
	HPMax      int      `yaml:"hp_max"`
	Strength   int      `yaml:"strength"`
	Items      []string `yaml:"items"`
}

// AllowsDifficulty reports whether the monster may spawn in a room of tier d
func (mt *MonsterType) AllowsDifficulty(d int) bool {
	return mt.Difficulty == nil || *mt.Difficulty == d
}

// IsPlayer returns true for the player type
func (mt *MonsterType) IsPlayer() bool {
	return mt.ID == PlayerID
}

// ItemType describes a kind of item. ChanceByDifficulty has one weight per tier.
type ItemType struct {
	ID                 string    `yaml:"id"`
	Char               string    `yaml:"char"`
	Color              string    `yaml:"color"`
	ChanceByDifficulty []float64 `yaml:"chance_by_difficulty"`
}

// Chance returns the spawn weight for tier d, 0 if out of range
func (it *ItemType) Chance(d int) float64 {
	if d < 0 || d >= len(it.ChanceByDifficulty) {
		return 0
	}
	return it.ChanceByDifficulty[d]
}

// IsGold returns true for the score item
func (it *ItemType) IsGold() bool {
	return it.ID == GoldID
}

// RoomType describes a kind of room. Difficulty nil matches any tier and a nil
// Monsters list allows every monster type.
type RoomType struct {
	ID             string    `yaml:"id"`
	Shape          RoomShape `yaml:"shape"`
	Difficulty     *int      `yaml:"difficulty"`
	Monsters       []string  `yaml:"monsters"`
	Chance         float64   `yaml:"chance"`
	Color          string    `yaml:"color"`
	MonsterDensity float64   `yaml:"monster_density"`
	ItemDensity    float64   `yaml:"item_density"`
}

// AllowsDifficulty reports whether this room type may be used for tier d
func (rt *RoomType) AllowsDifficulty(d int) bool {
	return rt.Difficulty == nil || *rt.Difficulty == d
}

// AllowsAnyMonster reports whether the room's monster list is a wildcard
func (rt *RoomType) AllowsAnyMonster() bool {
	return rt.Monsters == nil
}

// TerrainType holds the movement and light properties of a terrain id
type TerrainType struct {
	ID        string `yaml:"id"`
	Walkable  bool   `yaml:"walkable"`
	Lightable bool   `yaml:"lightable"`
}
