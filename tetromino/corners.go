package tetromino

// Corners holds the T piece probe offsets used for spin classification.
// A and B sit beside the pointing side of the T, C and D behind it.
type Corners struct {
	A, B, C, D Offset
}

// tCorners maps each facing to its probe corners. The labels rotate with the
// piece so the classification rule reads the same in every orientation.
var tCorners = [4]Corners{
	North: {A: Offset{-1, 1}, B: Offset{1, 1}, C: Offset{-1, -1}, D: Offset{1, -1}},
	East:  {A: Offset{1, 1}, B: Offset{1, -1}, C: Offset{-1, 1}, D: Offset{-1, -1}},
	South: {A: Offset{1, -1}, B: Offset{-1, -1}, C: Offset{1, 1}, D: Offset{-1, 1}},
	West:  {A: Offset{-1, -1}, B: Offset{-1, 1}, C: Offset{1, -1}, D: Offset{1, 1}},
}

// TCorners returns the probe corners for a T piece at the given facing.
func TCorners(f Facing) Corners {
	return tCorners[f]
}
