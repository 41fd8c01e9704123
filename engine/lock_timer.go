package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/minoterm/minoterm/core"
)

// lockMsgKind is the typed control protocol of the lock-down timer.
type lockMsgKind uint8

const (
	lockRestart lockMsgKind = iota
	lockCancel
	lockPause
	lockResume
)

// LockTimer is the one-shot lock-down countdown. Restart supersedes any prior
// deadline; when the countdown elapses a lockdown opcode is emitted. The
// controller re-validates groundedness when it executes the opcode, so a late
// firing racing a fall is harmless.
type LockTimer struct {
	out   chan<- Opcode
	ctrl  chan lockMsgKind
	delay time.Duration
	log   *zap.SugaredLogger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLockTimer creates a lock timer with the given countdown duration.
func NewLockTimer(out chan<- Opcode, delay time.Duration, log *zap.SugaredLogger) *LockTimer {
	return &LockTimer{
		out:      out,
		ctrl:     make(chan lockMsgKind, 8),
		delay:    delay,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start launches the timer goroutine in the disarmed state.
func (lt *LockTimer) Start() {
	if lt.running.CompareAndSwap(false, true) {
		lt.wg.Add(1)
		core.Go(lt.loop)
	}
}

// Restart arms the countdown, superseding any earlier deadline.
func (lt *LockTimer) Restart() { lt.send(lockRestart) }

// Cancel disarms the countdown without firing.
func (lt *LockTimer) Cancel() { lt.send(lockCancel) }

// Pause suspends the countdown. A paused armed countdown restarts at the full
// delay on Resume; residual time is deliberately not preserved.
func (lt *LockTimer) Pause() { lt.send(lockPause) }

// Resume re-arms a countdown that was armed when paused.
func (lt *LockTimer) Resume() { lt.send(lockResume) }

// Stop terminates the timer and waits for the goroutine to exit.
func (lt *LockTimer) Stop() {
	lt.stopOnce.Do(func() {
		close(lt.stopChan)
		lt.wg.Wait()
	})
}

func (lt *LockTimer) send(msg lockMsgKind) {
	if !lt.running.Load() {
		return
	}
	select {
	case lt.ctrl <- msg:
	case <-lt.stopChan:
		lt.log.Debugw("lock timer control after stop", "kind", msg)
	}
}

func (lt *LockTimer) loop() {
	defer lt.wg.Done()

	timer := time.NewTimer(lt.delay)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	disarm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}

	armed := false
	paused := false
	armedAtPause := false

	for {
		select {
		case <-lt.stopChan:
			return

		case msg := <-lt.ctrl:
			switch msg {
			case lockRestart:
				if paused {
					armedAtPause = true
					continue
				}
				disarm()
				timer.Reset(lt.delay)
				armed = true
			case lockCancel:
				disarm()
				armed = false
				armedAtPause = false
			case lockPause:
				if !paused {
					paused = true
					armedAtPause = armed
					disarm()
					armed = false
				}
			case lockResume:
				if paused {
					paused = false
					if armedAtPause {
						timer.Reset(lt.delay)
						armed = true
					}
					armedAtPause = false
				}
			}

		case <-timer.C:
			armed = false
			select {
			case lt.out <- OpLockdown:
			case <-lt.stopChan:
				return
			}
		}
	}
}
