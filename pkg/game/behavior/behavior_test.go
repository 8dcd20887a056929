package behavior_test

import (
	"strings"
	"testing"

	"basement/pkg/engine/world"
	"basement/pkg/game/behavior"
	"basement/pkg/game/content"
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"
	"basement/pkg/game/level/leveltest"
	gameworld "basement/pkg/game/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe is a scripted behavior that counts its calls
type probe struct {
	kinds  []events.Kind
	local  bool
	result bool
	calls  int
}

func (p *probe) Interests() []events.Kind { return p.kinds }
func (p *probe) Local(events.Kind) bool   { return p.local }
func (p *probe) Handle(*level.Level, *entities.Entity, events.Event) bool {
	p.calls++
	return p.result
}

func turns(l *level.Level, n int) {
	for i := 0; i < n; i++ {
		l.Wait()
		l.ConsumeEvents()
	}
}

func pos(t *testing.T, e *entities.Entity) world.Point {
	t.Helper()
	p, ok := e.Pos()
	require.True(t, ok, "%s has no position", e)
	return p
}

func corridor(width int) []string {
	wall := strings.Repeat("#", width)
	return []string{wall, "#@" + strings.Repeat(".", width-3) + "#", wall}
}

func TestComposite_ShortCircuits(t *testing.T) {
	x := &probe{kinds: []events.Kind{events.PlayerTookAction}, result: true}
	y := &probe{kinds: []events.Kind{events.PlayerTookAction}, result: true}
	c := behavior.NewComposite(x, y)

	l := leveltest.New(t, behavior.Default(), corridor(6)...)
	assert.True(t, c.Handle(l, l.Player(), events.Event{Kind: events.PlayerTookAction}))
	assert.Equal(t, 1, x.calls)
	assert.Zero(t, y.calls)

	x.result = false
	assert.True(t, c.Handle(l, l.Player(), events.Event{Kind: events.PlayerTookAction}))
	assert.Equal(t, 2, x.calls)
	assert.Equal(t, 1, y.calls)
}

func TestComposite_InterestsAndLocality(t *testing.T) {
	local := &probe{kinds: []events.Kind{events.EntityAttacked, events.PlayerTookAction}, local: true}
	global := &probe{kinds: []events.Kind{events.PlayerTookAction, events.EntityMoved}}
	c := behavior.NewComposite(local, global)

	assert.Equal(t, []events.Kind{events.EntityAttacked, events.PlayerTookAction, events.EntityMoved}, c.Interests())
	assert.True(t, c.Local(events.EntityAttacked))
	assert.False(t, c.Local(events.PlayerTookAction))
	assert.False(t, c.Local(events.EntityMoved))
	assert.False(t, c.Local(events.DoorOpen))

	// a local sub-behavior ignores events about someone else
	l := leveltest.New(t, behavior.Default(), corridor(6)...)
	self := l.Player()
	c.Handle(l, self, events.Event{Kind: events.PlayerTookAction, Source: self.ID + 100})
	assert.Zero(t, local.calls)
	assert.Equal(t, 1, global.calls)
	c.Handle(l, self, events.Event{Kind: events.PlayerTookAction})
	assert.Equal(t, 1, local.calls)
}

func TestRegistry_Build(t *testing.T) {
	r := behavior.Default()

	b, err := r.Build([]string{"sleep"})
	require.NoError(t, err)
	assert.IsType(t, behavior.Sleep{}, b)

	b, err = r.Build([]string{"stunnable", "random_walk"})
	require.NoError(t, err)
	assert.IsType(t, &behavior.Composite{}, b)

	_, err = r.Build([]string{"sleep", "fly"})
	assert.ErrorIs(t, err, behavior.ErrUnknownBehavior)

	assert.Panics(t, func() { r.Register("sleep", nil) })
}

func TestRegistry_CoversContent(t *testing.T) {
	tables, err := content.Default()
	require.NoError(t, err)
	assert.NoError(t, behavior.Default().Validate(tables))
	assert.NoError(t, behavior.Default().Validate(leveltest.Tables(t)))

	assert.Error(t, behavior.NewRegistry().Validate(tables))
}

func TestRandomWalk_NeverEntersWalls(t *testing.T) {
	l := leveltest.New(t, behavior.Default(),
		"#####",
		"#@..#",
		"#...#",
		"#...#",
		"#####",
	)
	l.Player().State.HP = 1000
	walker := leveltest.Spawn(t, l, "WALKER", world.Pt(3, 3))

	for i := 0; i < 100; i++ {
		turns(l, 1)
		require.True(t, walker.Alive())
		assert.Equal(t, gameworld.TerrainFloor, l.TileMap().Terrain(pos(t, walker)), "turn %d", i)
	}
}

func TestRandomWalk_SleepsWhenPlayerFar(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(50)...)
	start := world.Pt(46, 1)
	walker := leveltest.Spawn(t, l, "WALKER", start)

	turns(l, 3)
	assert.Equal(t, start, pos(t, walker))
	assert.Equal(t, entities.ModeSleeping, walker.Mode)
}

func TestStunnable_LosesTwoTurns(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(10)...)
	start := world.Pt(6, 1)
	chaser := leveltest.Spawn(t, l, "CHASER", start)
	tank := leveltest.Spawn(t, l, "TANK", world.Pt(7, 1))

	l.Attack(tank, chaser)
	l.ConsumeEvents()
	assert.Equal(t, entities.ModeStunned, chaser.Mode)

	turns(l, 2)
	assert.Equal(t, start, pos(t, chaser))

	turns(l, 1)
	assert.Equal(t, world.Pt(5, 1), pos(t, chaser))
	assert.Equal(t, entities.ModeChasing, chaser.Mode)
}

func TestBeeline_AttacksAdjacentPlayer(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(8)...)
	leveltest.Spawn(t, l, "CHASER", world.Pt(2, 1))

	turns(l, 1)
	assert.Equal(t, 19, l.Player().State.HP)
}

func TestBeeline_NeedsLineOfSight(t *testing.T) {
	l := leveltest.New(t, behavior.Default(),
		"#########",
		"#@..#...#",
		"#########",
	)
	start := world.Pt(6, 1)
	chaser := leveltest.Spawn(t, l, "CHASER", start)

	turns(l, 2)
	assert.Equal(t, start, pos(t, chaser))
	assert.Equal(t, entities.ModeDefault, chaser.Mode, "falls through to sleep")
}

func TestRangedKeepDistance(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(20)...)
	near := leveltest.Spawn(t, l, "ARCHER", world.Pt(2, 1))
	far := leveltest.Spawn(t, l, "ARCHER", world.Pt(15, 1))

	turns(l, 1)
	assert.Equal(t, entities.ModeFleeing, near.Mode)
	assert.Equal(t, world.Pt(3, 1), pos(t, near))
	assert.Equal(t, entities.ModeChasing, far.Mode)
	assert.Equal(t, world.Pt(14, 1), pos(t, far))
}

func TestThrowProjectile_HitsPlayer(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(10)...)
	archer := leveltest.Spawn(t, l, "ARCHER", world.Pt(6, 1))

	turns(l, 1)
	require.Len(t, l.Entities(), 3, "one projectile in flight")
	projectile := l.Entities()[2]
	assert.Equal(t, "ROCK_IN_FLIGHT", projectile.Type.ID)
	assert.Equal(t, world.Pt(5, 1), pos(t, projectile), "the throw's own turn is the wait step")
	assert.Len(t, archer.Inventory, 1)

	turns(l, 1)
	assert.Equal(t, world.Pt(4, 1), pos(t, projectile))

	turns(l, 2)
	assert.Equal(t, world.Pt(2, 1), pos(t, projectile))
	assert.Equal(t, 20, l.Player().State.HP)

	turns(l, 1)
	assert.False(t, projectile.Alive())
	assert.Equal(t, 19, l.Player().State.HP)
	require.Len(t, l.ItemsAt(world.Pt(2, 1)), 1)
	assert.Len(t, l.Entities(), 2)
}

func TestPathUntilHit_LandsBeforeWall(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(8)...)
	player := l.Player()
	rec := (&leveltest.Recorder{}).Listen(l, events.EntityDroppedItem)

	require.True(t, l.ThrowItem(player, player.Inventory[0], world.Pt(1001, 1), 2))
	l.ConsumeEvents()
	require.Len(t, l.Entities(), 2)
	projectile := l.Entities()[1]
	assert.Equal(t, world.Pt(2, 1), pos(t, projectile), "the throw's own turn is the wait step")

	turns(l, 2)
	assert.Equal(t, world.Pt(6, 1), pos(t, projectile))

	turns(l, 1)
	assert.False(t, projectile.Alive())
	require.Len(t, l.ItemsAt(world.Pt(6, 1)), 1)
	assert.Equal(t, 1, rec.Count(events.EntityDroppedItem))
}

func TestPickUpItems(t *testing.T) {
	l := leveltest.New(t, behavior.Default(), corridor(10)...)
	scavenger := leveltest.Spawn(t, l, "SCAVENGER", world.Pt(5, 1))
	rock, _ := l.Tables().Item("ROCK")
	l.DropItem(entities.NewItem(rock), world.Pt(6, 1), nil)
	l.DropItem(entities.NewItem(l.Tables().Gold()), world.Pt(6, 1), nil)

	turns(l, 1)
	assert.Equal(t, world.Pt(6, 1), pos(t, scavenger))

	turns(l, 1)
	require.Len(t, scavenger.Inventory, 1)
	assert.Equal(t, "ROCK", scavenger.Inventory[0].Type.ID)
	require.Len(t, l.ItemsAt(world.Pt(6, 1)), 1)
	assert.True(t, l.ItemsAt(world.Pt(6, 1))[0].IsGold())

	turns(l, 1)
	assert.Equal(t, world.Pt(6, 1), pos(t, scavenger), "nothing left to fetch")
}
