// Package audio produces short synthesized cues through the speaker. All
// sounds are generated, no assets. The Sounder implements engine.Listener so
// it can be fanned out next to the renderer.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/minoterm/minoterm/engine"
)

const sampleRate = beep.SampleRate(48000)

// Sounder owns the speaker mixer. Play methods are cheap no-ops until
// Initialize succeeds, so a machine without audio still runs the game.
type Sounder struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSounder() *Sounder {
	return &Sounder{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the Sounder silent.
func (s *Sounder) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker close.
func (s *Sounder) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.mixer.Clear()
	s.initialized = false
}

func (s *Sounder) play(streamer beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.mixer.Add(streamer)
}

// ===== engine.Listener =====

func (s *Sounder) ViewChanged(*engine.Game)      {}
func (s *Sounder) RefreshRequested(*engine.Game) {}

// PieceLocked clicks on every lock that did not clear lines.
func (s *Sounder) PieceLocked(g *engine.Game) {
	if !g.BeepEnabled() || g.Score().LastAction != engine.ActionNone {
		return
	}
	s.play(NewTone(220, 30*time.Millisecond, 0.15))
}

// LinesCleared chirps upward; bigger clears start higher.
func (s *Sounder) LinesCleared(g *engine.Game, count int, action engine.Action, perfect bool) {
	if !g.BeepEnabled() {
		return
	}
	base := 330.0 + 110.0*float64(count)
	if perfect {
		base *= 2
	}
	s.play(beep.Seq(
		NewTone(base, 60*time.Millisecond, 0.2),
		NewTone(base*1.5, 80*time.Millisecond, 0.2),
	))
}

// LevelChanged plays a two-note rise.
func (s *Sounder) LevelChanged(g *engine.Game, level int) {
	if !g.BeepEnabled() {
		return
	}
	s.play(beep.Seq(
		NewTone(440, 70*time.Millisecond, 0.2),
		NewTone(660, 100*time.Millisecond, 0.2),
	))
}

// GameOver plays a falling tone.
func (s *Sounder) GameOver(g *engine.Game) {
	if !g.BeepEnabled() {
		return
	}
	s.play(NewSweep(440, 110, 600*time.Millisecond, 0.25))
}
