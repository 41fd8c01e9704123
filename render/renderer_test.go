package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minoterm/minoterm/engine"
	"github.com/minoterm/minoterm/playfield"
)

func newSimRenderer(t *testing.T) (tcell.SimulationScreen, *Renderer) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 30)
	t.Cleanup(sim.Fini)
	return sim, New(sim)
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func newGame(r *Renderer) *engine.Game {
	return engine.NewGame(engine.Options{
		StartLevel: 1,
		Seed:       42,
		Color:      true,
		Help:       true,
	}, r, zap.NewNop().Sugar())
}

func TestFrameDrawsWellBorder(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	r.ViewChanged(g)

	assert.Equal(t, '┌', runeAt(sim, boardX-1, boardY-1))
	assert.Equal(t, '┐', runeAt(sim, boardX+boardWidth, boardY-1))
	assert.Equal(t, '└', runeAt(sim, boardX-1, boardBottom))
	assert.Equal(t, '│', runeAt(sim, boardX-1, boardY+5))
}

func TestActivePieceAndGhostVisible(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	// The spawn rows sit above the visible well; step down into view first.
	for i := 0; i < 4; i++ {
		g.Apply(engine.OpFall)
	}

	p := g.Active()
	off := p.Cells()[0]
	sy := screenRow(p.Y + off.Y)
	sx := boardX + (p.X+off.X)*cellWidth
	assert.Equal(t, '█', runeAt(sim, sx, sy))

	gy := screenRow(g.GhostRow() + off.Y)
	assert.Equal(t, '░', runeAt(sim, sx, gy), "ghost at the hard-drop position")
}

func TestStatsPanel(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	r.ViewChanged(g)

	assert.Equal(t, 'S', runeAt(sim, statsX, boardY))
	assert.Equal(t, 'L', runeAt(sim, statsX, boardY+1))
	assert.Equal(t, 'H', runeAt(sim, panelX, boardY), "hold label")
	assert.Equal(t, 'N', runeAt(sim, panelX, boardY+4), "next label")
}

func TestPauseOverlay(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	g.Apply(engine.OpPause)

	found := false
	midY := boardY + playfield.VisibleHeight/2 - 1
	for sx := boardX - 1; sx < boardX+boardWidth; sx++ {
		if runeAt(sim, sx, midY) == 'P' {
			found = true
			break
		}
	}
	assert.True(t, found, "PAUSED banner over the well")
}

func TestGameOverOverlaySurvivesRedraw(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	for i := 0; i < 300 && !g.IsOver(); i++ {
		g.Apply(engine.OpHardDrop)
	}
	require.True(t, g.IsOver())

	// A later redraw must keep the banner up.
	r.ViewChanged(g)
	midY := boardY + playfield.VisibleHeight/2 - 1
	found := false
	for sx := boardX - 1; sx < boardX+boardWidth; sx++ {
		if runeAt(sim, sx, midY) == 'G' {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestLockedCellsPersistInFrame(t *testing.T) {
	sim, r := newSimRenderer(t)
	g := newGame(r)
	g.Apply(engine.OpHardDrop)

	// The first piece locked on the floor; its blocks render on the bottom row.
	bottom := screenRow(0)
	found := false
	for sx := boardX; sx < boardX+boardWidth; sx++ {
		if runeAt(sim, sx, bottom) == '█' {
			found = true
			break
		}
	}
	assert.True(t, found)
}
