package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/minoterm/minoterm/tetromino"
)

// Guideline piece colors.
var pieceColors = map[tetromino.Type]tcell.Color{
	tetromino.O: tcell.NewRGBColor(240, 200, 0),
	tetromino.I: tcell.NewRGBColor(0, 200, 220),
	tetromino.T: tcell.NewRGBColor(160, 60, 200),
	tetromino.L: tcell.NewRGBColor(240, 140, 0),
	tetromino.J: tcell.NewRGBColor(40, 80, 230),
	tetromino.S: tcell.NewRGBColor(60, 200, 60),
	tetromino.Z: tcell.NewRGBColor(220, 50, 50),
}

var (
	monoColor   = tcell.NewRGBColor(200, 200, 200)
	borderColor = tcell.NewRGBColor(120, 120, 130)
	ghostColor  = tcell.NewRGBColor(90, 90, 100)
	textColor   = tcell.NewRGBColor(210, 210, 210)
	dimColor    = tcell.NewRGBColor(130, 130, 140)
	flashColor  = tcell.NewRGBColor(255, 255, 255)
	alertColor  = tcell.NewRGBColor(240, 200, 60)
)

// pieceColor resolves a block color honoring the monochrome toggle.
func pieceColor(t tetromino.Type, colorOn bool) tcell.Color {
	if !colorOn {
		return monoColor
	}
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return monoColor
}
