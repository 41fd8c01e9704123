package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minoterm/minoterm/engine"
)

func TestLookupBindings(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Opcode
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.OpMoveLeft},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), engine.OpMoveLeft},
		{"vi right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), engine.OpMoveRight},
		{"soft drop", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.OpSoftDrop},
		{"rotate cw", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), engine.OpRotateCW},
		{"rotate ccw", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), engine.OpRotateCCW},
		{"hard drop", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.OpHardDrop},
		{"hold", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), engine.OpHold},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), engine.OpPause},
		{"help", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), engine.OpToggleHelp},
		{"refresh", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModNone), engine.OpRefresh},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), engine.OpQuit},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), engine.OpQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), engine.OpNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), engine.OpNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kt.Lookup(tc.ev))
		})
	}
}

func newSimReader(t *testing.T) (tcell.SimulationScreen, *Reader, chan engine.Opcode) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)

	out := make(chan engine.Opcode, 16)
	r := NewReader(sim, out, zap.NewNop().Sugar())
	r.Start()
	t.Cleanup(r.Stop)
	return sim, r, out
}

func waitOpcode(t *testing.T, ch <-chan engine.Opcode) engine.Opcode {
	t.Helper()
	select {
	case op := <-ch:
		return op
	case <-time.After(time.Second):
		t.Fatal("no opcode forwarded")
		return engine.OpNone
	}
}

func TestReaderForwardsBoundKeys(t *testing.T) {
	sim, _, out := newSimReader(t)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	assert.Equal(t, engine.OpMoveLeft, waitOpcode(t, out))
}

func TestReaderDropsWhileReleased(t *testing.T) {
	sim, r, out := newSimReader(t)

	r.Release()
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	// Give the loop time to drain the released key before re-capturing.
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, out)

	r.Capture()
	sim.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	assert.Equal(t, engine.OpMoveRight, waitOpcode(t, out))
}

func TestReaderStopIsIdempotent(t *testing.T) {
	_, r, _ := newSimReader(t)
	r.Stop()
	r.Stop()
}
