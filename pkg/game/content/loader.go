package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTables []byte

// file is the on-disk layout of a content file
type file struct {
	Terrain  []TerrainType  `yaml:"terrain"`
	Monsters []*MonsterType `yaml:"monsters"`
	Items    []*ItemType    `yaml:"items"`
	Rooms    []*RoomType    `yaml:"rooms"`
}

// Tables is the loaded, validated content. Slices keep file order, which is
// the order weighted choices iterate in.
type Tables struct {
	terrain  []TerrainType
	monsters []*MonsterType
	items    []*ItemType
	rooms    []*RoomType

	monsterByID map[string]*MonsterType
	itemByID    map[string]*ItemType
	roomByID    map[string]*RoomType
	terrainByID map[string]TerrainType
}

// Default returns the tables embedded in the binary
func Default() (*Tables, error) {
	return Load(defaultTables)
}

// LoadFile reads and parses a content file from disk
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	t, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return t, nil
}

// Load parses YAML content and checks every cross reference
func Load(data []byte) (*Tables, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	t := &Tables{
		terrain:     f.Terrain,
		monsters:    f.Monsters,
		items:       f.Items,
		rooms:       f.Rooms,
		monsterByID: make(map[string]*MonsterType, len(f.Monsters)),
		itemByID:    make(map[string]*ItemType, len(f.Items)),
		roomByID:    make(map[string]*RoomType, len(f.Rooms)),
		terrainByID: make(map[string]TerrainType, len(f.Terrain)),
	}

	for _, tt := range f.Terrain {
		if _, dup := t.terrainByID[tt.ID]; dup {
			return nil, fmt.Errorf("duplicate terrain %q", tt.ID)
		}
		t.terrainByID[tt.ID] = tt
	}
	for _, it := range f.Items {
		if _, dup := t.itemByID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item %q", it.ID)
		}
		if len(it.ChanceByDifficulty) != DifficultyTiers {
			return nil, fmt.Errorf("item %q: chance_by_difficulty needs %d entries, got %d",
				it.ID, DifficultyTiers, len(it.ChanceByDifficulty))
		}
		t.itemByID[it.ID] = it
	}
	for _, mt := range f.Monsters {
		if _, dup := t.monsterByID[mt.ID]; dup {
			return nil, fmt.Errorf("duplicate monster %q", mt.ID)
		}
		if err := checkDifficulty(mt.Difficulty); err != nil {
			return nil, fmt.Errorf("monster %q: %w", mt.ID, err)
		}
		if mt.HPMax <= 0 {
			return nil, fmt.Errorf("monster %q: hp_max must be positive", mt.ID)
		}
		t.monsterByID[mt.ID] = mt
	}
	for _, rt := range f.Rooms {
		if _, dup := t.roomByID[rt.ID]; dup {
			return nil, fmt.Errorf("duplicate room %q", rt.ID)
		}
		if err := checkDifficulty(rt.Difficulty); err != nil {
			return nil, fmt.Errorf("room %q: %w", rt.ID, err)
		}
		if rt.Shape != ShapeRandomBox && rt.Shape != ShapeFullBox {
			return nil, fmt.Errorf("room %q: unknown shape %q", rt.ID, rt.Shape)
		}
		t.roomByID[rt.ID] = rt
	}

	// cross references
	for _, mt := range f.Monsters {
		for _, id := range mt.Items {
			if _, ok := t.itemByID[id]; !ok {
				return nil, fmt.Errorf("monster %q carries item %q: %w", mt.ID, id, ErrUnknownID)
			}
		}
	}
	for _, rt := range f.Rooms {
		for _, id := range rt.Monsters {
			if _, ok := t.monsterByID[id]; !ok {
				return nil, fmt.Errorf("room %q lists monster %q: %w", rt.ID, id, ErrUnknownID)
			}
		}
	}
	if _, ok := t.monsterByID[PlayerID]; !ok {
		return nil, fmt.Errorf("monster %q: %w", PlayerID, ErrUnknownID)
	}
	if _, ok := t.itemByID[GoldID]; !ok {
		return nil, fmt.Errorf("item %q: %w", GoldID, ErrUnknownID)
	}
	return t, nil
}

func checkDifficulty(d *int) error {
	if d != nil && (*d < 0 || *d > MaxDifficulty) {
		return fmt.Errorf("difficulty %d out of range 0..%d", *d, MaxDifficulty)
	}
	return nil
}

// Monster looks up a monster type by id
func (t *Tables) Monster(id string) (*MonsterType, bool) {
	mt, ok := t.monsterByID[id]
	return mt, ok
}

// Item looks up an item type by id
func (t *Tables) Item(id string) (*ItemType, bool) {
	it, ok := t.itemByID[id]
	return it, ok
}

// Room looks up a room type by id
func (t *Tables) Room(id string) (*RoomType, bool) {
	rt, ok := t.roomByID[id]
	return rt, ok
}

// Terrain looks up a terrain type by id
func (t *Tables) Terrain(id string) (TerrainType, bool) {
	tt, ok := t.terrainByID[id]
	return tt, ok
}

// Monsters returns every monster type in file order
func (t *Tables) Monsters() []*MonsterType {
	return t.monsters
}

// Items returns every item type in file order
func (t *Tables) Items() []*ItemType {
	return t.items
}

// Rooms returns every room type in file order
func (t *Tables) Rooms() []*RoomType {
	return t.rooms
}

// TerrainTypes returns every terrain entry in file order
func (t *Tables) TerrainTypes() []TerrainType {
	return t.terrain
}

// Player returns the player monster type
func (t *Tables) Player() *MonsterType {
	return t.monsterByID[PlayerID]
}

// Gold returns the gold item type
func (t *Tables) Gold() *ItemType {
	return t.itemByID[GoldID]
}

// InFlight returns the monster type that carries item id through the air
func (t *Tables) InFlight(itemID string) (*MonsterType, bool) {
	return t.Monster(itemID + InFlightSuffix)
}

// MonstersFor returns the monster types a room of type rt and tier d may
// spawn, in file order
func (t *Tables) MonstersFor(rt *RoomType, d int) []*MonsterType {
	var out []*MonsterType
	if rt.AllowsAnyMonster() {
		for _, mt := range t.monsters {
			if mt.AllowsDifficulty(d) {
				out = append(out, mt)
			}
		}
		return out
	}
	for _, id := range rt.Monsters {
		if mt := t.monsterByID[id]; mt.AllowsDifficulty(d) {
			out = append(out, mt)
		}
	}
	return out
}

// RoomsFor returns the room types usable for tier d, in file order
func (t *Tables) RoomsFor(d int) []*RoomType {
	var out []*RoomType
	for _, rt := range t.rooms {
		if rt.AllowsDifficulty(d) {
			out = append(out, rt)
		}
	}
	return out
}
