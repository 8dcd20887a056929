// Package devtools renders maps and levels as text for debugging and for
// the headless play loop.
package devtools

import (
	"strings"

	"github.com/gookit/color"

	"basement/pkg/engine/world"
	"basement/pkg/game/level"
	gameworld "basement/pkg/game/world"
)

// RenderOptions controls text rendering
type RenderOptions struct {
	// Color wraps glyphs in ANSI colour codes
	Color bool
	// Fog hides cells the player never saw and shows remembered cells
	// without their occupants
	Fog bool
	// Width and Height clip the output to a viewport centred on the player.
	// Zero means the whole map.
	Width, Height int
	// Debug shows the generator's division glyphs
	Debug bool
}

var (
	colorWall       = color.Style{color.FgWhite}
	colorCorridor   = color.Style{color.FgGray}
	colorDoor       = color.Style{color.FgYellow, color.OpBold}
	colorStairs     = color.Style{color.FgMagenta, color.OpBold}
	colorRemembered = color.Style{color.FgGray}
	colorDebug      = color.Style{color.FgRed}
)

// glyph is one rendered cell
type glyph struct {
	ch    rune
	style color.Style
	hex   string
}

func (g glyph) render(useColor bool) string {
	s := string(g.ch)
	if !useColor {
		return s
	}
	if g.hex != "" {
		return color.HEX(g.hex).Sprint(s)
	}
	if len(g.style) > 0 {
		return g.style.Sprint(s)
	}
	return s
}

// TerrainGlyph returns the character for a cell's terrain and feature.
// Walls use their engraving annotations: '|' for vertical runs, '-' for
// horizontal runs and corners.
func TerrainGlyph(c *gameworld.Cell) rune {
	if c == nil {
		return ' '
	}
	switch c.Feature {
	case gameworld.FeatureStairsUp:
		return '<'
	case gameworld.FeatureStairsDown:
		return '>'
	}
	switch c.Terrain {
	case gameworld.TerrainFloor:
		return '.'
	case gameworld.TerrainCorridor:
		return '#'
	case gameworld.TerrainDoorClosed:
		return '+'
	case gameworld.TerrainDoorOpen:
		return '\''
	case gameworld.TerrainWall:
		if c.HasAnnotation(gameworld.AnnotationVertical) {
			return '|'
		}
		return '-'
	default:
		return ' '
	}
}

func terrainStyle(tm *gameworld.TileMap, c *gameworld.Cell) glyph {
	g := glyph{ch: TerrainGlyph(c)}
	if c == nil {
		return g
	}
	switch {
	case c.Feature != gameworld.FeatureNone:
		g.style = colorStairs
	case c.Terrain == gameworld.TerrainWall:
		g.style = colorWall
	case c.Terrain == gameworld.TerrainCorridor:
		g.style = colorCorridor
	case c.Terrain.IsDoor():
		g.style = colorDoor
	case c.Terrain == gameworld.TerrainFloor:
		if r := tm.RoomAt(c.Point); r != nil && r.Type != nil {
			g.hex = r.Type.Color
		}
	}
	return g
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// viewport returns the part of bounds to draw, centred on focus
func viewport(bounds world.Rect, focus world.Point, w, h int) world.Rect {
	clip := func(origin, focus, span, full int) (int, int) {
		if span <= 0 || span >= full {
			return origin, full
		}
		start := focus - span/2
		if start < origin {
			start = origin
		}
		if start+span > origin+full {
			start = origin + full - span
		}
		return start, span
	}
	x, width := clip(bounds.X, focus.X, w, bounds.W)
	y, height := clip(bounds.Y, focus.Y, h, bounds.H)
	return world.Rect{X: x, Y: y, W: width, H: height}
}

func draw(view world.Rect, useColor bool, at func(p world.Point) glyph) string {
	var sb strings.Builder
	sb.Grow(view.Area() + view.H)
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			sb.WriteString(at(world.Pt(x, y)).render(useColor))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderMap draws a generated map with the generator's spawn points on top
func RenderMap(tm *gameworld.TileMap, opts RenderOptions) string {
	spawns := make(map[world.Point]glyph)
	for _, it := range tm.POI.Items {
		spawns[it.Position] = glyph{ch: firstRune(it.Type.Char, '?'), hex: it.Type.Color}
	}
	for _, m := range tm.POI.Monsters {
		spawns[m.Position] = glyph{ch: firstRune(m.Type.Char, '?'), hex: m.Type.Color}
	}

	view := viewport(tm.Bounds(), tm.POI.StairsUp, opts.Width, opts.Height)
	return draw(view, opts.Color, func(p world.Point) glyph {
		if g, ok := spawns[p]; ok {
			return g
		}
		c := tm.Cell(p)
		if opts.Debug && c != nil && c.Debug != 0 {
			return glyph{ch: c.Debug, style: colorDebug}
		}
		return terrainStyle(tm, c)
	})
}

// RenderLevel draws the live level: entities over ground items over terrain
func RenderLevel(l *level.Level, opts RenderOptions) string {
	tm := l.TileMap()
	focus := tm.POI.StairsUp
	if p, ok := l.Player().Pos(); ok {
		focus = p
	}

	view := viewport(tm.Bounds(), focus, opts.Width, opts.Height)
	return draw(view, opts.Color, func(p world.Point) glyph {
		c := tm.Cell(p)
		if opts.Fog {
			if !l.CanPlayerRemember(p) {
				return glyph{ch: ' '}
			}
			if !l.CanPlayerSee(p) {
				return glyph{ch: TerrainGlyph(c), style: colorRemembered}
			}
		}
		if e := l.EntityAt(p); e != nil {
			return glyph{ch: firstRune(e.Type.Char, '?'), hex: e.Type.Color}
		}
		if items := l.ItemsAt(p); len(items) > 0 {
			top := items[len(items)-1]
			return glyph{ch: firstRune(top.Type.Char, '?'), hex: top.Type.Color}
		}
		if opts.Debug && c != nil && c.Debug != 0 {
			return glyph{ch: c.Debug, style: colorDebug}
		}
		return terrainStyle(tm, c)
	})
}
