// Package render draws the game to a tcell screen. The renderer implements
// engine.Listener, so every draw happens on the controller goroutine and may
// read the Game without locking.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/minoterm/minoterm/engine"
	"github.com/minoterm/minoterm/playfield"
	"github.com/minoterm/minoterm/tetromino"
)

// Screen layout in terminal cells. Board cells are two columns wide so the
// well looks roughly square.
const (
	boardX = 1 // left edge of the well interior
	boardY = 1 // top edge of the well interior

	cellWidth   = 2
	boardWidth  = playfield.Width * cellWidth
	boardBottom = boardY + playfield.VisibleHeight

	panelX = boardX + boardWidth + 3 // hold and next column
	statsX = panelX + 12             // score column

	flashDuration = 120 * time.Millisecond
)

// Renderer draws frames and transitional effects.
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// ViewChanged redraws the whole frame.
func (r *Renderer) ViewChanged(g *engine.Game) {
	r.drawFrame(g)
}

// LinesCleared blocks for the flash animation; input is gated off by the
// controller for its duration.
func (r *Renderer) LinesCleared(g *engine.Game, count int, action engine.Action, perfect bool) {
	r.flashRows(g, count)
}

func (r *Renderer) PieceLocked(*engine.Game)      {}
func (r *Renderer) LevelChanged(*engine.Game, int) {}

// GameOver redraws; the overlay comes from drawFrame so later redraws keep it.
func (r *Renderer) GameOver(g *engine.Game) {
	r.drawFrame(g)
}

// RefreshRequested repaints from scratch, recovering from terminal corruption.
func (r *Renderer) RefreshRequested(g *engine.Game) {
	r.screen.Sync()
	r.drawFrame(g)
}

func (r *Renderer) drawFrame(g *engine.Game) {
	r.screen.Clear()
	r.drawBorder()
	r.drawField(g)
	if !g.IsOver() {
		r.drawGhost(g)
		r.drawActive(g)
	}
	r.drawHold(g)
	r.drawNext(g)
	r.drawStats(g)
	if g.HelpVisible() {
		r.drawHelp()
	}
	if g.IsPaused() {
		r.drawOverlay(" PAUSED ", " press p to resume ")
	}
	if g.IsOver() {
		r.drawOverlay(" GAME OVER ", " press q to exit ")
	}
	r.screen.Show()
}

// screenRow converts a field row (origin bottom) to a screen row (origin top).
func screenRow(y int) int {
	return boardY + playfield.VisibleHeight - 1 - y
}

func (r *Renderer) drawBorder() {
	style := tcell.StyleDefault.Foreground(borderColor)
	for sy := boardY; sy < boardBottom; sy++ {
		r.screen.SetContent(boardX-1, sy, '│', nil, style)
		r.screen.SetContent(boardX+boardWidth, sy, '│', nil, style)
	}
	for sx := boardX; sx < boardX+boardWidth; sx++ {
		r.screen.SetContent(sx, boardY-1, '─', nil, style)
		r.screen.SetContent(sx, boardBottom, '─', nil, style)
	}
	r.screen.SetContent(boardX-1, boardY-1, '┌', nil, style)
	r.screen.SetContent(boardX+boardWidth, boardY-1, '┐', nil, style)
	r.screen.SetContent(boardX-1, boardBottom, '└', nil, style)
	r.screen.SetContent(boardX+boardWidth, boardBottom, '┘', nil, style)
}

// drawBlock paints one field cell as two terminal columns.
func (r *Renderer) drawBlock(x, y int, ch rune, color tcell.Color) {
	if y < 0 || y >= playfield.VisibleHeight || x < 0 || x >= playfield.Width {
		return
	}
	style := tcell.StyleDefault.Foreground(color)
	sx := boardX + x*cellWidth
	sy := screenRow(y)
	r.screen.SetContent(sx, sy, ch, nil, style)
	r.screen.SetContent(sx+1, sy, ch, nil, style)
}

func (r *Renderer) drawField(g *engine.Game) {
	colorOn := g.ColorEnabled()
	for y := 0; y < playfield.VisibleHeight; y++ {
		for x := 0; x < playfield.Width; x++ {
			t := g.Field().Cell(x, y)
			if t == tetromino.Empty {
				continue
			}
			r.drawBlock(x, y, '█', pieceColor(t, colorOn))
		}
	}
}

func (r *Renderer) drawActive(g *engine.Game) {
	p := g.Active()
	color := pieceColor(p.Type, g.ColorEnabled())
	for _, off := range p.Cells() {
		r.drawBlock(p.X+off.X, p.Y+off.Y, '█', color)
	}
}

// drawGhost marks where a hard drop would land. Skipped when it would
// overprint the active piece itself.
func (r *Renderer) drawGhost(g *engine.Game) {
	p := g.Active()
	ghostY := g.GhostRow()
	if ghostY == p.Y {
		return
	}
	for _, off := range p.Cells() {
		r.drawBlock(p.X+off.X, ghostY+off.Y, '░', ghostColor)
	}
}

// drawMini paints a piece in its spawn facing inside a small box anchored at
// the given screen position. Spawn facings occupy two rows.
func (r *Renderer) drawMini(t tetromino.Type, sx, sy int, colorOn bool) {
	style := tcell.StyleDefault.Foreground(pieceColor(t, colorOn))
	for _, off := range tetromino.Cells(t, tetromino.North) {
		cx := sx + (off.X+1)*cellWidth
		cy := sy + 1 - off.Y
		r.screen.SetContent(cx, cy, '█', nil, style)
		r.screen.SetContent(cx+1, cy, '█', nil, style)
	}
}

func (r *Renderer) drawHold(g *engine.Game) {
	r.drawText(panelX, boardY, "HOLD", dimColor)
	if g.Hold() != tetromino.Empty {
		r.drawMini(g.Hold(), panelX, boardY+1, g.ColorEnabled())
	}
}

func (r *Renderer) drawNext(g *engine.Game) {
	top := boardY + 4
	r.drawText(panelX, top, "NEXT", dimColor)
	for i, t := range g.Preview() {
		r.drawMini(t, panelX, top+1+i*2, g.ColorEnabled())
	}
}

func (r *Renderer) drawStats(g *engine.Game) {
	s := g.Score()
	r.drawText(statsX, boardY+0, fmt.Sprintf("SCORE %8d", s.Score), textColor)
	r.drawText(statsX, boardY+1, fmt.Sprintf("LEVEL %8d", s.Level), textColor)
	r.drawText(statsX, boardY+2, fmt.Sprintf("LINES %8d", s.Lines), textColor)
	r.drawText(statsX, boardY+3, fmt.Sprintf("GOAL  %8d", s.Goal), textColor)
	if s.Combo > 0 {
		r.drawText(statsX, boardY+4, fmt.Sprintf("COMBO %8d", s.Combo), alertColor)
	}
	if s.BackToBack {
		r.drawText(statsX, boardY+5, "BACK-TO-BACK", alertColor)
	}

	elapsed := g.Elapsed().Round(time.Second)
	r.drawText(statsX, boardY+7, fmt.Sprintf("TIME   %02d:%02d",
		int(elapsed.Minutes()), int(elapsed.Seconds())%60), textColor)

	if toast := r.toast(s); toast != "" {
		r.drawText(statsX, boardY+9, toast, alertColor)
	}
}

// toast is the banner for the most recent scoring action.
func (r *Renderer) toast(s *engine.ScoreState) string {
	if s.LastPerfect {
		return "PERFECT CLEAR"
	}
	name := s.LastAction.String()
	if name == "" {
		return ""
	}
	if s.LastBonusB2B {
		return "B2B " + name
	}
	return name
}

var helpLines = []string{
	"←/h move left    →/l move right",
	"↓/j soft drop    space hard drop",
	"↑/k/x rotate cw  z rotate ccw",
	"c hold   p pause   ^L redraw",
	"b beep   v color   ? help   q quit",
}

func (r *Renderer) drawHelp() {
	for i, line := range helpLines {
		r.drawText(boardX-1, boardBottom+2+i, line, dimColor)
	}
}

// drawOverlay centers a two-line banner over the well.
func (r *Renderer) drawOverlay(title, hint string) {
	midY := boardY + playfield.VisibleHeight/2 - 1
	r.drawCentered(midY, title, alertColor)
	r.drawCentered(midY+1, hint, dimColor)
}

func (r *Renderer) drawCentered(sy int, text string, color tcell.Color) {
	sx := boardX + (boardWidth-len(text))/2
	if sx < boardX-1 {
		sx = boardX - 1
	}
	r.drawText(sx, sy, text, color)
}

func (r *Renderer) drawText(sx, sy int, text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for i, ch := range text {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

// flashRows blinks the rows directly above the post-clear stack. The field is
// already compacted when this runs, so the flash band sits where the cleared
// lines collapsed to.
func (r *Renderer) flashRows(g *engine.Game, count int) {
	base := g.Field().OccupiedRows()
	style := tcell.StyleDefault.Foreground(flashColor)
	for y := base; y < base+count && y < playfield.VisibleHeight; y++ {
		sy := screenRow(y)
		for sx := boardX; sx < boardX+boardWidth; sx++ {
			r.screen.SetContent(sx, sy, '▒', nil, style)
		}
	}
	r.screen.Show()
	time.Sleep(flashDuration)
}
