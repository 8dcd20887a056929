package world

import (
	"github.com/zyedidia/generic/mapset"
)

// DefaultSightRadius is the default field of view radius.
const DefaultSightRadius = 30

// octant transforms for recursive shadowcasting: xx, xy, yx, yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// VisiblePoints calculates which points are visible from origin within radius
// using recursive shadowcasting. allowsLight reports whether light passes a
// point; cells that block light are still visible themselves, so walls
// bounding a lit room show up in the result.
func VisiblePoints(origin Point, radius int, allowsLight func(Point) bool) mapset.Set[Point] {
	visible := mapset.New[Point]()
	visible.Put(origin)
	if radius <= 0 {
		return visible
	}
	for _, o := range octants {
		castLight(origin, radius, 1, 1.0, 0.0, o, allowsLight, visible)
	}
	return visible
}

func castLight(origin Point, radius, row int, start, end float64, o [4]int, allowsLight func(Point) bool, visible mapset.Set[Point]) {
	if start < end {
		return
	}
	xx, xy, yx, yy := o[0], o[1], o[2], o[3]
	radiusSq := radius * radius
	newStart := 0.0

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		for dx <= 0 {
			dx++
			p := Point{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy < radiusSq {
				visible.Put(p)
			}

			if blocked {
				if !allowsLight(p) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if !allowsLight(p) && j < radius {
				blocked = true
				castLight(origin, radius, j+1, start, lSlope, o, allowsLight, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// HasLineOfSight returns true if every point on the Bresenham line from a to b
// allows light, endpoints included.
func HasLineOfSight(a, b Point, allowsLight func(Point) bool) bool {
	for _, p := range Line(a, b) {
		if !allowsLight(p) {
			return false
		}
	}
	return true
}
