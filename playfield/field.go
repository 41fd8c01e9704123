// Package playfield models the grid: collision queries, piece flattening,
// line-completion detection, gravity compaction and perfect-clear detection.
package playfield

import "github.com/minoterm/minoterm/tetromino"

const (
	// Width is the playfield width in cells.
	Width = 10
	// VisibleHeight is the number of rows shown to the player.
	VisibleHeight = 20
	// BufferRows are hidden rows above the skyline where pieces spawn.
	BufferRows = 4
	// TotalRows is the full modeled height.
	TotalRows = VisibleHeight + BufferRows
)

// Field is the mutable grid. Row 0 is the bottom; rows at or above
// VisibleHeight are the hidden buffer zone. Cells hold tetromino.Empty or the
// type of the locked piece that produced them.
//
// Field is not safe for concurrent use; the game controller is its sole owner.
type Field struct {
	cells [TotalRows][Width]tetromino.Type
}

// New returns an empty field.
func New() *Field {
	return &Field{}
}

// Cell returns the content at (x, y). Out-of-range coordinates read as Empty.
func (f *Field) Cell(x, y int) tetromino.Type {
	if x < 0 || x >= Width || y < 0 || y >= TotalRows {
		return tetromino.Empty
	}
	return f.cells[y][x]
}

// IsPlacementValid reports whether all four cells are inside the side and
// bottom bounds and unoccupied. Rows above the modeled top are treated as
// free space; the lock-out check catches pieces that settle up there.
func (f *Field) IsPlacementValid(cells [4]tetromino.Offset, x, y int) bool {
	for _, c := range cells {
		cx, cy := x+c.X, y+c.Y
		if cx < 0 || cx >= Width || cy < 0 {
			return false
		}
		if cy < TotalRows && f.cells[cy][cx] != tetromino.Empty {
			return false
		}
	}
	return true
}

// Flatten writes the piece type into the four target cells. Callers must have
// validated the placement; Flatten is the only mutation besides compaction.
func (f *Field) Flatten(cells [4]tetromino.Offset, x, y int, t tetromino.Type) {
	for _, c := range cells {
		cy := y + c.Y
		if cy < TotalRows {
			f.cells[cy][x+c.X] = t
		}
	}
}

// IsLineComplete reports whether every cell of the row is occupied.
func (f *Field) IsLineComplete(row int) bool {
	if row < 0 || row >= TotalRows {
		return false
	}
	for x := 0; x < Width; x++ {
		if f.cells[row][x] == tetromino.Empty {
			return false
		}
	}
	return true
}

// ProcessCompletedLines scans rows in [max(yMin,0), yMax] for completed
// lines, removes them and compacts the rows above downward. It returns the
// number of cleared lines and whether the clear left the field perfectly
// empty.
func (f *Field) ProcessCompletedLines(yMin, yMax int) (cleared int, perfect bool) {
	if yMin < 0 {
		yMin = 0
	}
	if yMax >= TotalRows {
		yMax = TotalRows - 1
	}

	completed := make([]int, 0, 4)
	for y := yMin; y <= yMax; y++ {
		if f.IsLineComplete(y) {
			completed = append(completed, y)
		}
	}
	if len(completed) == 0 {
		return 0, false
	}

	// Provisional perfect clear: the clear reaches the floor. It survives
	// only if nothing occupied remains after compaction.
	perfect = completed[0] == 0

	isCompleted := map[int]bool{}
	for _, y := range completed {
		isCompleted[y] = true
	}

	dst := completed[0]
	for src := completed[0]; src < TotalRows; src++ {
		if isCompleted[src] {
			continue
		}
		f.cells[dst] = f.cells[src]
		if perfect {
			for x := 0; x < Width; x++ {
				if f.cells[dst][x] != tetromino.Empty {
					perfect = false
					break
				}
			}
		}
		dst++
	}
	for ; dst < TotalRows; dst++ {
		f.cells[dst] = [Width]tetromino.Type{}
	}

	return len(completed), perfect
}

// OccupiedRows counts rows containing at least one non-empty cell.
func (f *Field) OccupiedRows() int {
	n := 0
	for y := 0; y < TotalRows; y++ {
		for x := 0; x < Width; x++ {
			if f.cells[y][x] != tetromino.Empty {
				n++
				break
			}
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (f *Field) IsEmpty() bool {
	return f.OccupiedRows() == 0
}

// Snapshot returns a copy of the grid for assertions and debugging.
func (f *Field) Snapshot() [TotalRows][Width]tetromino.Type {
	return f.cells
}
