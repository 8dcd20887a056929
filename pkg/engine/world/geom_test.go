package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, Pt(3, 3).ManhattanDistance(Pt(3, 3)))
	assert.Equal(t, 7, Pt(0, 0).ManhattanDistance(Pt(3, -4)))
	assert.Equal(t, Pt(3, 3).ManhattanDistance(Pt(-1, 5)), Pt(-1, 5).ManhattanDistance(Pt(3, 3)))
}

func TestNeighborsOrder(t *testing.T) {
	p := Pt(5, 5)
	assert.Equal(t, []Point{{5, 4}, {6, 5}, {5, 6}, {4, 5}}, p.Neighbors())
	assert.Equal(t, []Point{{6, 4}, {6, 6}, {4, 6}, {4, 4}}, p.DiagonalNeighbors())

	for i, d := range AllDirections() {
		all := append(p.Neighbors(), p.DiagonalNeighbors()...)
		assert.Equal(t, all[i], p.Add(d.Delta()), d.String())
		assert.Equal(t, Point{}, d.Delta().Add(d.Opposite().Delta()))
	}
}

func TestClosestAndFarthestPoint(t *testing.T) {
	p := Pt(0, 0)
	candidates := []Point{{2, 0}, {0, 1}, {1, 0}, {3, 3}, {0, -6}}

	c, ok := p.ClosestPoint(candidates)
	require.True(t, ok)
	assert.Equal(t, Pt(0, 1), c, "ties go to the earliest candidate")

	f, ok := p.FarthestPoint(candidates)
	require.True(t, ok)
	assert.Equal(t, Pt(3, 3), f)

	_, ok = p.ClosestPoint(nil)
	assert.False(t, ok)
	_, ok = p.FarthestPoint(nil)
	assert.False(t, ok)
}

func TestRectEdgesAndCorners(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 3}

	assert.Equal(t, Pt(5, 5), r.Max())
	assert.Equal(t, [4]Point{{2, 3}, {5, 3}, {2, 5}, {5, 5}}, r.Corners())
	assert.Equal(t, []Point{{3, 3}, {4, 3}}, r.TopEdge())
	assert.Equal(t, []Point{{3, 5}, {4, 5}}, r.BottomEdge())
	assert.Equal(t, []Point{{2, 4}}, r.LeftEdge())
	assert.Equal(t, []Point{{5, 4}}, r.RightEdge())
	assert.Equal(t, Rect{X: 3, Y: 4, W: 2, H: 1}, r.Inset(1))
	assert.Len(t, r.Points(), r.Area())
	assert.True(t, r.Contains(Pt(5, 5)))
	assert.False(t, r.Contains(Pt(6, 5)))
	assert.True(t, Rect{W: 3}.Empty())
	assert.Nil(t, Rect{W: 3}.Points())
}

func TestRandomRect(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	outer := Rect{X: 10, Y: 4, W: 12, H: 9}
	min := Size{W: 5, H: 5}

	for i := 0; i < 200; i++ {
		r := outer.RandomRect(rng, min)
		assert.GreaterOrEqual(t, r.W, min.W)
		assert.GreaterOrEqual(t, r.H, min.H)
		assert.True(t, outer.Contains(r.Origin()), r.String())
		assert.True(t, outer.Contains(r.Max()), r.String())
	}

	narrow := Rect{W: 3, H: 20}
	r := narrow.RandomRect(rng, min)
	assert.Equal(t, 3, r.W, "too-small dimensions are kept whole")
}

func TestRandomPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := Rect{X: -2, Y: 1, W: 3, H: 2}
	for i := 0; i < 50; i++ {
		assert.True(t, r.Contains(r.RandomPoint(rng)))
	}
}
