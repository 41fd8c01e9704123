package playfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minoterm/minoterm/tetromino"
)

// fillRow occupies a full row, optionally leaving holes.
func fillRow(f *Field, y int, holes ...int) {
	isHole := map[int]bool{}
	for _, h := range holes {
		isHole[h] = true
	}
	for x := 0; x < Width; x++ {
		if !isHole[x] {
			f.cells[y][x] = tetromino.J
		}
	}
}

func TestIsPlacementValid(t *testing.T) {
	f := New()
	cells := tetromino.Cells(tetromino.T, tetromino.North)

	assert.True(t, f.IsPlacementValid(cells, 5, 5))
	assert.False(t, f.IsPlacementValid(cells, 0, 5), "left wall")
	assert.True(t, f.IsPlacementValid(cells, 1, 5))
	assert.False(t, f.IsPlacementValid(cells, Width-1, 5), "right wall")
	assert.False(t, f.IsPlacementValid(cells, 5, -1), "floor")

	f.cells[5][5] = tetromino.Z
	assert.False(t, f.IsPlacementValid(cells, 5, 5), "occupied cell")
	assert.True(t, f.IsPlacementValid(cells, 5, 6))
}

func TestFlattenWritesValidatedCells(t *testing.T) {
	f := New()
	cells := tetromino.Cells(tetromino.S, tetromino.North)
	require.True(t, f.IsPlacementValid(cells, 4, 0))
	f.Flatten(cells, 4, 0, tetromino.S)

	assert.Equal(t, tetromino.S, f.Cell(3, 0))
	assert.Equal(t, tetromino.S, f.Cell(4, 0))
	assert.Equal(t, tetromino.S, f.Cell(4, 1))
	assert.Equal(t, tetromino.S, f.Cell(5, 1))
	assert.Equal(t, tetromino.Empty, f.Cell(5, 0))
}

func TestProcessCompletedLinesNoop(t *testing.T) {
	f := New()
	fillRow(f, 0, 4)
	fillRow(f, 1, 7)
	before := f.Snapshot()

	cleared, perfect := f.ProcessCompletedLines(0, 3)
	assert.Zero(t, cleared)
	assert.False(t, perfect)
	assert.Equal(t, before, f.Snapshot(), "zero-clear must leave the grid untouched")
}

func TestProcessCompletedLinesCompaction(t *testing.T) {
	f := New()
	fillRow(f, 0)
	fillRow(f, 1, 3) // survives, shifts to row 0
	fillRow(f, 2)
	fillRow(f, 3, 8) // survives, shifts to row 1

	cleared, perfect := f.ProcessCompletedLines(0, 3)
	assert.Equal(t, 2, cleared)
	assert.False(t, perfect, "cells survive above the clear")

	assert.Equal(t, tetromino.Empty, f.Cell(3, 0), "hole from old row 1")
	assert.Equal(t, tetromino.J, f.Cell(0, 0))
	assert.Equal(t, tetromino.Empty, f.Cell(8, 1), "hole from old row 3")
	assert.Equal(t, tetromino.J, f.Cell(0, 1))
	assert.Equal(t, 2, f.OccupiedRows())
}

func TestPerfectClear(t *testing.T) {
	f := New()
	for y := 0; y < 4; y++ {
		fillRow(f, y)
	}
	cleared, perfect := f.ProcessCompletedLines(0, 3)
	assert.Equal(t, 4, cleared)
	assert.True(t, perfect)
	assert.True(t, f.IsEmpty())
}

func TestPerfectClearDeniedBySurvivor(t *testing.T) {
	f := New()
	fillRow(f, 0)
	f.cells[1][0] = tetromino.L // lone survivor above the clear

	cleared, perfect := f.ProcessCompletedLines(0, 1)
	assert.Equal(t, 1, cleared)
	assert.False(t, perfect)
	assert.Equal(t, tetromino.L, f.Cell(0, 0))
}

func TestPerfectClearRequiresFloorRow(t *testing.T) {
	f := New()
	f.cells[0][0] = tetromino.L
	fillRow(f, 1)

	cleared, perfect := f.ProcessCompletedLines(0, 2)
	assert.Equal(t, 1, cleared)
	assert.False(t, perfect, "clear did not reach row 0")
}

func TestClampedScanRange(t *testing.T) {
	f := New()
	fillRow(f, 0)
	cleared, _ := f.ProcessCompletedLines(-3, TotalRows+5)
	assert.Equal(t, 1, cleared)
}
