package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want []Point
	}{
		{"single point", Pt(2, 2), Pt(2, 2), []Point{{2, 2}}},
		{"horizontal", Pt(0, 0), Pt(3, 0), []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"backwards", Pt(0, 2), Pt(0, 0), []Point{{0, 2}, {0, 1}, {0, 0}}},
		{"diagonal", Pt(0, 0), Pt(2, 2), []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", Pt(0, 0), Pt(4, 2), []Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.a, tt.b))
		})
	}
}

func TestLineSteps(t *testing.T) {
	a, b := Pt(-3, 7), Pt(11, -2)
	line := Line(a, b)
	assert.Equal(t, a, line[0])
	assert.Equal(t, b, line[len(line)-1])
	for i := 1; i < len(line); i++ {
		d := line[i].Sub(line[i-1])
		assert.LessOrEqual(t, abs(d.X), 1)
		assert.LessOrEqual(t, abs(d.Y), 1)
	}
}

func TestPathL(t *testing.T) {
	a, b := Pt(1, 1), Pt(3, 4)

	h := PathL(a, b, true)
	assert.Equal(t, []Point{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}, h)

	v := PathL(a, b, false)
	assert.Equal(t, []Point{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 4}, {3, 4}}, v)

	assert.Equal(t, []Point{a}, PathL(a, a, true))
}
