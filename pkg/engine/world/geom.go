// Package world provides generic 2D grid geometry primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
	"math/rand"
)

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by n
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// ManhattanDistance returns the rectilinear (taxicab) distance between p and q
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors returns the four cardinal neighbours in N, E, S, W order
func (p Point) Neighbors() []Point {
	return []Point{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

// DiagonalNeighbors returns the four diagonal neighbours in NE, SE, SW, NW order
func (p Point) DiagonalNeighbors() []Point {
	return []Point{
		{p.X + 1, p.Y - 1},
		{p.X + 1, p.Y + 1},
		{p.X - 1, p.Y + 1},
		{p.X - 1, p.Y - 1},
	}
}

// ClosestPoint returns the candidate nearest to p by rectilinear distance.
// Ties go to the earliest candidate. Returns false if candidates is empty.
func (p Point) ClosestPoint(candidates []Point) (Point, bool) {
	if len(candidates) == 0 {
		return Point{}, false
	}
	best := candidates[0]
	bestDist := p.ManhattanDistance(best)
	for _, c := range candidates[1:] {
		if d := p.ManhattanDistance(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

// FarthestPoint returns the candidate farthest from p by rectilinear distance.
// Ties go to the earliest candidate. Returns false if candidates is empty.
func (p Point) FarthestPoint(candidates []Point) (Point, bool) {
	if len(candidates) == 0 {
		return Point{}, false
	}
	best := candidates[0]
	bestDist := p.ManhattanDistance(best)
	for _, c := range candidates[1:] {
		if d := p.ManhattanDistance(c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle. Max() is inclusive.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rect from an origin and size
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the top-left point
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Max returns the bottom-right point (inclusive)
func (r Rect) Max() Point {
	return Point{r.X + r.W - 1, r.Y + r.H - 1}
}

// Size returns the rect dimensions
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

// Area returns W*H, or 0 for degenerate rects
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the middle cell (rounded toward the origin)
func (r Rect) Center() Point {
	return Point{r.X + (r.W-1)/2, r.Y + (r.H-1)/2}
}

// Inset shrinks the rect by n on every side
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Points returns every point in the rect in row-major order
func (r Rect) Points() []Point {
	if r.Empty() {
		return nil
	}
	points := make([]Point, 0, r.Area())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			points = append(points, Point{x, y})
		}
	}
	return points
}

// Corners returns the four corner points: top-left, top-right, bottom-left, bottom-right
func (r Rect) Corners() [4]Point {
	m := r.Max()
	return [4]Point{{r.X, r.Y}, {m.X, r.Y}, {r.X, m.Y}, {m.X, m.Y}}
}

// TopEdge returns the top row without its corners
func (r Rect) TopEdge() []Point {
	return r.horizontalEdge(r.Y)
}

// BottomEdge returns the bottom row without its corners
func (r Rect) BottomEdge() []Point {
	return r.horizontalEdge(r.Max().Y)
}

// LeftEdge returns the left column without its corners
func (r Rect) LeftEdge() []Point {
	return r.verticalEdge(r.X)
}

// RightEdge returns the right column without its corners
func (r Rect) RightEdge() []Point {
	return r.verticalEdge(r.Max().X)
}

func (r Rect) horizontalEdge(y int) []Point {
	var points []Point
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		points = append(points, Point{x, y})
	}
	return points
}

func (r Rect) verticalEdge(x int) []Point {
	var points []Point
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		points = append(points, Point{x, y})
	}
	return points
}

// RandomPoint returns a uniformly random point inside the rect
func (r Rect) RandomPoint(rng *rand.Rand) Point {
	return Point{r.X + rng.Intn(r.W), r.Y + rng.Intn(r.H)}
}

// RandomRect returns a random sub-rectangle of at least min size.
// If the rect is smaller than min in a dimension, that dimension is kept whole.
func (r Rect) RandomRect(rng *rand.Rand, min Size) Rect {
	w := randomSpan(rng, min.W, r.W)
	h := randomSpan(rng, min.H, r.H)
	return Rect{
		X: r.X + rng.Intn(r.W-w+1),
		Y: r.Y + rng.Intn(r.H-h+1),
		W: w,
		H: h,
	}
}

func randomSpan(rng *rand.Rand, min, max int) int {
	if min >= max {
		return max
	}
	return min + rng.Intn(max-min+1)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
