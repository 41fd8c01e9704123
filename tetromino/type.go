// Package tetromino defines piece identity and the static geometry tables:
// per-facing cell offsets, rotation kick candidates for the super and classic
// rotation systems, lowest-cell offsets and the T piece corner probes.
package tetromino

// Type identifies one of the seven tetrominoes. Empty doubles as the
// vacant-cell sentinel in the playfield.
type Type uint8

const (
	Empty Type = iota
	O
	I
	T
	L
	J
	S
	Z
)

// Types lists the seven playable pieces in bag-fill order.
var Types = [7]Type{O, I, T, L, J, S, Z}

func (t Type) String() string {
	switch t {
	case O:
		return "O"
	case I:
		return "I"
	case T:
		return "T"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	default:
		return "."
	}
}

// Facing is one of the four rotational orientations. North is the spawn
// orientation; values advance clockwise.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// CW returns the facing one clockwise step away.
func (f Facing) CW() Facing { return (f + 1) % 4 }

// CCW returns the facing one counter-clockwise step away.
func (f Facing) CCW() Facing { return (f + 3) % 4 }

func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "?"
	}
}

// RotationDir selects the requested rotation direction.
type RotationDir uint8

const (
	Clockwise RotationDir = iota
	CounterClockwise
)

// Offset is a cell position relative to a piece origin, x growing right and
// y growing up (playfield origin is bottom-left).
type Offset struct {
	X, Y int
}
