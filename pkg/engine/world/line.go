package world

// Line returns the Bresenham line from a to b, both endpoints included.
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	n := dx
	if -dy > n {
		n = -dy
	}
	points := make([]Point, 0, n+1)

	err := dx + dy
	x, y := a.X, a.Y
	for {
		points = append(points, Point{x, y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// PathL returns an L-shaped (taxicab) path from a to b, both endpoints included.
// If horizontalFirst is set the path walks along X before Y, otherwise Y first.
func PathL(a, b Point, horizontalFirst bool) []Point {
	points := make([]Point, 0, a.ManhattanDistance(b)+1)
	points = append(points, a)
	cur := a

	walkX := func() {
		for cur.X != b.X {
			cur.X += sign(b.X - cur.X)
			points = append(points, cur)
		}
	}
	walkY := func() {
		for cur.Y != b.Y {
			cur.Y += sign(b.Y - cur.Y)
			points = append(points, cur)
		}
	}

	if horizontalFirst {
		walkX()
		walkY()
	} else {
		walkY()
		walkX()
	}
	return points
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
