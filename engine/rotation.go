package engine

import (
	"github.com/minoterm/minoterm/playfield"
	"github.com/minoterm/minoterm/tetromino"
)

// RotationSystem selects how rotations are resolved against the field.
type RotationSystem uint8

const (
	// RotationSuper tries the full ordered kick-candidate list.
	RotationSuper RotationSystem = iota
	// RotationClassic tries only the in-place pose.
	RotationClassic
)

func (rs RotationSystem) String() string {
	if rs == RotationClassic {
		return "classic"
	}
	return "super"
}

// ResolveRotation attempts to rotate the piece in the given direction. On
// success the piece's facing, position and spin classification are updated
// and true is returned. On failure the piece is left untouched.
func ResolveRotation(f *playfield.Field, p *Piece, dir tetromino.RotationDir, sys RotationSystem) bool {
	var to tetromino.Facing
	if dir == tetromino.Clockwise {
		to = p.Facing.CW()
	} else {
		to = p.Facing.CCW()
	}
	cells := tetromino.Cells(p.Type, to)

	if sys == RotationClassic {
		if !f.IsPlacementValid(cells, p.X, p.Y) {
			return false
		}
		p.Facing = to
		p.Spin = SpinNone
		return true
	}

	for i, kick := range tetromino.Kicks(p.Type, p.Facing, dir) {
		if kick == nil {
			continue
		}
		nx, ny := p.X+kick.DX, p.Y+kick.DY
		if !f.IsPlacementValid(cells, nx, ny) {
			continue
		}
		p.Facing = to
		p.X, p.Y = nx, ny
		p.Spin = SpinNone
		if p.Type == tetromino.T {
			p.Spin = classifyTSpin(f, nx, ny, to, i+1)
		}
		return true
	}
	return false
}

// classifyTSpin applies the corner-probe rule after a successful T rotation.
// Rotation point 5 is a full T-Spin unconditionally; otherwise corners A,B
// (front) and C,D (back) decide: A∧B with C∨D is full, C∧D with A∨B is mini.
func classifyTSpin(f *playfield.Field, x, y int, facing tetromino.Facing, rotationPoint int) Spin {
	if rotationPoint >= 5 {
		return SpinFull
	}

	c := tetromino.TCorners(facing)
	a := cornerTouched(f, x+c.A.X, y+c.A.Y)
	b := cornerTouched(f, x+c.B.X, y+c.B.Y)
	cc := cornerTouched(f, x+c.C.X, y+c.C.Y)
	d := cornerTouched(f, x+c.D.X, y+c.D.Y)

	switch {
	case a && b && (cc || d):
		return SpinFull
	case cc && d && (a || b):
		return SpinMini
	default:
		return SpinNone
	}
}

// cornerTouched treats walls and the floor as obstructions.
func cornerTouched(f *playfield.Field, x, y int) bool {
	if x < 0 || x >= playfield.Width || y < 0 {
		return true
	}
	return f.Cell(x, y) != tetromino.Empty
}
