package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"basement/pkg/game/level"
)

// DefaultDumpFilename is where DumpToFile writes when given no path
const DefaultDumpFilename = "map.txt"

// WriteDump writes a full debug dump of l: metadata, legend, the revealed
// map, the full map, rooms, corridors, entities and ground items. The format
// is sections of "key: value" lines.
func WriteDump(w io.Writer, l *level.Level) {
	tm := l.TileMap()
	player := l.Player()
	size := tm.Size()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, rooms, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", size.W)
	fmt.Fprintf(w, "height: %d\n", size.H)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	if p, ok := player.Pos(); ok {
		fmt.Fprintf(w, "player: %d,%d\n", p.X, p.Y)
	} else {
		fmt.Fprintln(w, "player: dead")
	}
	fmt.Fprintf(w, "player_hp: %d/%d\n", player.State.HP, player.Stats.HPMax)
	fmt.Fprintf(w, "score: %d\n", l.Score())
	fmt.Fprintf(w, "stairs_up: %d,%d\n", tm.POI.StairsUp.X, tm.POI.StairsUp.Y)
	fmt.Fprintf(w, "stairs_down: %d,%d\n", tm.POI.StairsDown.X, tm.POI.StairsDown.Y)
	fmt.Fprintf(w, "visible_cells: %d\n", l.VisibleCount())
	fmt.Fprintf(w, "remembered_cells: %d\n", l.RememberedCount())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = corridor  | - = walls  + = closed door  ' = open door  < = stairs up  > = stairs down  other = entity or item character")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (remembered cells only) ---")
	fmt.Fprint(w, RenderLevel(l, RenderOptions{Fog: true}))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed) ---")
	fmt.Fprint(w, RenderLevel(l, RenderOptions{}))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, r := range tm.Rooms() {
		fmt.Fprintf(w, "  id: %s type: %s difficulty: %d rect: %s neighbors: %d\n",
			r.ID, r.Type.ID, r.Difficulty, r.Rect, r.Neighbors.Size())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Corridors ---")
	for _, c := range tm.Corridors {
		fmt.Fprintf(w, "  from: %s to: %s cells: %d doors: %d annotation: %q\n",
			c.From, c.To, len(c.Cells), len(c.Doors), c.Annotation)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities ---")
	for _, e := range l.Entities() {
		p, _ := e.Pos()
		fmt.Fprintf(w, "  id: %d type: %s at: %d,%d hp: %d mode: %s items: %d\n",
			e.ID, e.Type.ID, p.X, p.Y, e.State.HP, e.Mode, len(e.Inventory))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Ground items ---")
	for _, p := range tm.Bounds().Points() {
		for _, it := range l.ItemsAt(p) {
			fmt.Fprintf(w, "  type: %s at: %d,%d\n", it.Type.ID, p.X, p.Y)
		}
	}
}

// DumpToFile writes WriteDump output to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpToFile(l *level.Level, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	WriteDump(f, l)
	if err := f.Close(); err != nil {
		return "", err
	}
	return absPath, nil
}
