package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pause-aware session time. The renderer shows elapsed
// game time, which must freeze while the game is paused.
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock starts a clock at the current wall time.
func NewPausableClock() *PausableClock {
	return &PausableClock{realStartTime: time.Now()}
}

// Elapsed returns game time elapsed since start, excluding paused spans.
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime
	}
	return time.Since(pc.realStartTime) - pc.totalPausedTime
}

// Pause stops game time advancement.
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = time.Now()
	}
}

// Resume continues game time advancement.
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += time.Since(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state.
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
