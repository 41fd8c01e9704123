package tetromino

// cellTable holds the four mino offsets for every (type, facing) pair.
// Offsets are relative to the piece origin with y growing up, matching the
// guideline orientations: North is the spawn pose, East is one clockwise step.
var cellTable = map[Type][4][4]Offset{
	// O never changes shape; all four facings share the same offsets so the
	// rotation handlers need no special case.
	O: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		South: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		West:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	// I rotates inside a 4x4 box, so its pivot sits between cells.
	I: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{1, 1}, {1, 0}, {1, -1}, {1, -2}},
		South: {{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		West:  {{0, 1}, {0, 0}, {0, -1}, {0, -2}},
	},
	T: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, 0}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		West:  {{0, 1}, {0, 0}, {0, -1}, {-1, 0}},
	},
	L: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		West:  {{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
	},
	J: {
		North: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		East:  {{0, 1}, {1, 1}, {0, 0}, {0, -1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		West:  {{0, 1}, {0, 0}, {0, -1}, {-1, -1}},
	},
	S: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		West:  {{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
	},
	Z: {
		North: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		South: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		West:  {{0, 1}, {0, 0}, {-1, 0}, {-1, -1}},
	},
}

// Cells returns the four mino offsets for the given type and facing.
func Cells(t Type, f Facing) [4]Offset {
	return cellTable[t][f]
}

// LowestOffset returns the smallest relative row among the piece's cells.
// The lock-down machine uses it to track the lowest absolute row reached.
func LowestOffset(t Type, f Facing) int {
	cells := cellTable[t][f]
	lowest := cells[0].Y
	for _, c := range cells[1:] {
		if c.Y < lowest {
			lowest = c.Y
		}
	}
	return lowest
}
