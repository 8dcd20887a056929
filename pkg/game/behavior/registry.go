package behavior

import (
	"errors"
	"fmt"

	"basement/pkg/game/content"
	"basement/pkg/game/level"
)

// ErrUnknownBehavior is returned for a behavior id with no constructor
var ErrUnknownBehavior = errors.New("unknown behavior")

// Tunables shared by the default registry
const (
	StunTurns         = 2
	RandomWalkSleep   = 40
	RockThrowCooldown = 6
	RockThrowSpeed    = 1
	RockItemID        = "ROCK"
	ShortRange        = 5
	LongRange         = 7
)

// Constructor builds a fresh behavior instance for one entity
type Constructor func() level.Behavior

// Registry maps behavior ids to constructors
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Default returns a registry holding every built-in behavior
func Default() *Registry {
	r := NewRegistry()
	r.Register("sleep", func() level.Behavior { return Sleep{} })
	r.Register("stunnable", func() level.Behavior { return &Stunnable{Turns: StunTurns} })
	r.Register("random_walk", func() level.Behavior { return &RandomWalk{SleepDistance: RandomWalkSleep} })
	r.Register("beeline_visible", func() level.Behavior { return Beeline{} })
	r.Register("range_5_visible", func() level.Behavior { return &RangedKeepDistance{BestRange: ShortRange} })
	r.Register("range_7_visible", func() level.Behavior { return &RangedKeepDistance{BestRange: LongRange} })
	r.Register("throw_rock_slow", func() level.Behavior {
		return &ThrowProjectile{ItemID: RockItemID, Speed: RockThrowSpeed, Cooldown: RockThrowCooldown}
	})
	r.Register("path_until_hit", func() level.Behavior { return PathUntilHit{} })
	r.Register("pick_up_rocks", func() level.Behavior { return &PickUpItems{ItemID: RockItemID} })
	return r
}

// Register adds a constructor. Registering an id twice panics.
func (r *Registry) Register(id string, c Constructor) {
	if _, dup := r.constructors[id]; dup {
		panic(fmt.Sprintf("behavior: %q registered twice", id))
	}
	r.constructors[id] = c
}

// Has reports whether id is registered
func (r *Registry) Has(id string) bool {
	_, ok := r.constructors[id]
	return ok
}

// Build creates the behavior for a list of ids: the behavior itself for a
// single id, a Composite in list order otherwise
func (r *Registry) Build(ids []string) (level.Behavior, error) {
	subs := make([]level.Behavior, 0, len(ids))
	for _, id := range ids {
		c, ok := r.constructors[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, id)
		}
		subs = append(subs, c())
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return NewComposite(subs...), nil
}

// Validate checks that every behavior named by the content is registered
func (r *Registry) Validate(tables *content.Tables) error {
	var errs []error
	for _, mt := range tables.Monsters() {
		for _, id := range mt.Behaviors {
			if !r.Has(id) {
				errs = append(errs, fmt.Errorf("monster %s: %w: %q", mt.ID, ErrUnknownBehavior, id))
			}
		}
	}
	return errors.Join(errs...)
}
