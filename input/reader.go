// Package input translates terminal key events into the opcode stream. The
// reader is one of the command producers; it never touches game state.
package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/minoterm/minoterm/core"
	"github.com/minoterm/minoterm/engine"
)

// Reader polls the terminal on its own goroutine and forwards bound keys as
// opcodes. Capture and Release implement engine.InputGate: while released,
// key events are dropped so an animation cannot queue stale commands.
type Reader struct {
	screen tcell.Screen
	table  *KeyTable
	out    chan<- engine.Opcode
	log    *zap.SugaredLogger

	capturing atomic.Bool
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewReader(screen tcell.Screen, out chan<- engine.Opcode, log *zap.SugaredLogger) *Reader {
	r := &Reader{
		screen: screen,
		table:  DefaultKeyTable(),
		out:    out,
		log:    log,
	}
	r.capturing.Store(true)
	return r
}

// Capture resumes forwarding key events.
func (r *Reader) Capture() { r.capturing.Store(true) }

// Release drops key events until the next Capture.
func (r *Reader) Release() { r.capturing.Store(false) }

// Start begins polling. The goroutine exits when Stop is called or the
// screen is finalized.
func (r *Reader) Start() {
	r.wg.Add(1)
	core.Go(r.loop)
}

// Stop unblocks the poll loop and waits for it to exit. Idempotent.
func (r *Reader) Stop() {
	r.stopOnce.Do(func() {
		// PostEvent fails only on a full queue; the interrupt is then
		// redundant because the loop is already draining.
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	r.wg.Wait()
}

func (r *Reader) loop() {
	defer r.wg.Done()
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized underneath us.
			return
		case *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			r.screen.Sync()
			r.out <- engine.OpRefresh
		case *tcell.EventKey:
			if !r.capturing.Load() {
				r.log.Debugw("key dropped while released", "key", ev.Name())
				continue
			}
			op := r.table.Lookup(ev)
			if op == engine.OpNone {
				continue
			}
			r.out <- op
		}
	}
}
