package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/minoterm/minoterm/core"
)

// fallMsgKind is the typed control protocol of the fall ticker.
type fallMsgKind uint8

const (
	fallSetLevel fallMsgKind = iota
	fallPause
	fallResume
)

type fallMsg struct {
	kind  fallMsgKind
	level int
}

// FallTicker periodically emits fall opcodes onto the merged command stream.
// Its period follows the gravity curve for the current level and adjusts in
// place when notified of a level change, without restarting the goroutine.
type FallTicker struct {
	out  chan<- Opcode
	ctrl chan fallMsg
	log  *zap.SugaredLogger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFallTicker creates a ticker that writes to the merged stream.
func NewFallTicker(out chan<- Opcode, log *zap.SugaredLogger) *FallTicker {
	return &FallTicker{
		out:      out,
		ctrl:     make(chan fallMsg, 8),
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start launches the ticker goroutine at the given starting level.
func (ft *FallTicker) Start(level int) {
	if ft.running.CompareAndSwap(false, true) {
		ft.wg.Add(1)
		core.Go(func() { ft.loop(level) })
	}
}

// SetLevel adjusts the fall period to the gravity curve for level.
func (ft *FallTicker) SetLevel(level int) {
	ft.send(fallMsg{kind: fallSetLevel, level: level})
}

// Pause suspends fall emission until Resume.
func (ft *FallTicker) Pause() { ft.send(fallMsg{kind: fallPause}) }

// Resume re-arms the ticker with its configured period.
func (ft *FallTicker) Resume() { ft.send(fallMsg{kind: fallResume}) }

// Stop terminates the ticker and waits for the goroutine to exit.
func (ft *FallTicker) Stop() {
	ft.stopOnce.Do(func() {
		close(ft.stopChan)
		ft.wg.Wait()
	})
}

func (ft *FallTicker) send(msg fallMsg) {
	if !ft.running.Load() {
		return
	}
	select {
	case ft.ctrl <- msg:
	case <-ft.stopChan:
		// Benign race: control message to a stopped ticker.
		ft.log.Debugw("fall ticker control after stop", "kind", msg.kind)
	}
}

func (ft *FallTicker) loop(level int) {
	defer ft.wg.Done()

	period := GravityPeriod(level)
	paused := false
	timer := time.NewTimer(period)
	defer timer.Stop()

	rearm := func(d time.Duration) {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(d)
	}

	for {
		select {
		case <-ft.stopChan:
			return

		case msg := <-ft.ctrl:
			switch msg.kind {
			case fallSetLevel:
				period = GravityPeriod(msg.level)
				if !paused {
					rearm(period)
				}
			case fallPause:
				paused = true
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			case fallResume:
				if paused {
					paused = false
					rearm(period)
				}
			}

		case <-timer.C:
			if paused {
				continue
			}
			select {
			case ft.out <- OpFall:
			case <-ft.stopChan:
				return
			}
			timer.Reset(period)
		}
	}
}
