package engine

import (
	"github.com/minoterm/minoterm/playfield"
	"github.com/minoterm/minoterm/tetromino"
)

// Spin is the classification of a piece's most recent rotation. It is only
// ever non-zero for the T piece and is invalidated by any later move or fall.
type Spin uint8

const (
	SpinNone Spin = iota
	SpinMini
	SpinFull
)

func (s Spin) String() string {
	switch s {
	case SpinMini:
		return "mini t-spin"
	case SpinFull:
		return "t-spin"
	default:
		return "none"
	}
}

// Piece is the one active falling piece. The controller owns it exclusively;
// the ghost projection is derived on demand.
type Piece struct {
	Type   tetromino.Type
	Facing tetromino.Facing
	X, Y   int
	Spin   Spin
}

// spawnX is the horizontal spawn origin; pieces appear centered with their
// lowest cells in the row just above the skyline.
const (
	spawnX = 4
	spawnY = playfield.VisibleHeight
)

// NewPiece returns a piece of the given type at its spawn pose, lowest cells
// on the first buffer row above the skyline.
func NewPiece(t tetromino.Type) *Piece {
	return &Piece{Type: t, Facing: tetromino.North, X: spawnX, Y: spawnY}
}

// Cells returns the piece's current relative cell offsets.
func (p *Piece) Cells() [4]tetromino.Offset {
	return tetromino.Cells(p.Type, p.Facing)
}

// LowestRow returns the absolute row of the piece's lowest cell.
func (p *Piece) LowestRow() int {
	return p.Y + tetromino.LowestOffset(p.Type, p.Facing)
}

// IsGrounded reports whether the one-row-down pose collides.
func (p *Piece) IsGrounded(f *playfield.Field) bool {
	return !f.IsPlacementValid(p.Cells(), p.X, p.Y-1)
}

// GhostY returns the row the piece would occupy after a hard drop.
func (p *Piece) GhostY(f *playfield.Field) int {
	y := p.Y
	for f.IsPlacementValid(p.Cells(), p.X, y-1) {
		y--
	}
	return y
}

// RowSpan returns the inclusive absolute row range covered by the piece,
// used to bound the completed-line scan after a lock.
func (p *Piece) RowSpan() (yMin, yMax int) {
	cells := p.Cells()
	yMin, yMax = p.Y+cells[0].Y, p.Y+cells[0].Y
	for _, c := range cells[1:] {
		if p.Y+c.Y < yMin {
			yMin = p.Y + c.Y
		}
		if p.Y+c.Y > yMax {
			yMax = p.Y + c.Y
		}
	}
	return yMin, yMax
}

// AboveSkyline reports whether every cell of the piece sits in the hidden
// buffer zone, which is the lock-out condition when the piece locks there.
func (p *Piece) AboveSkyline() bool {
	for _, c := range p.Cells() {
		if p.Y+c.Y < playfield.VisibleHeight {
			return false
		}
	}
	return true
}
