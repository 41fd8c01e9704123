package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneDurationAndAmplitude(t *testing.T) {
	s := NewTone(440, 100*time.Millisecond, 0.2)
	total, peak := drain(t, s)
	assert.Equal(t, sampleRate.N(100*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.2)
	assert.Greater(t, peak, 0.1, "tone is audible")
}

func TestToneFadesAtBoundaries(t *testing.T) {
	s := NewTone(440, 50*time.Millisecond, 0.3)
	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.InDelta(t, 0, buf[0][0], 0.01, "attack starts silent")
}

func TestSweepDecays(t *testing.T) {
	s := NewSweep(440, 110, 200*time.Millisecond, 0.25)
	total, peak := drain(t, s)
	assert.Equal(t, sampleRate.N(200*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.25)
}

func TestUninitializedSounderIsSilent(t *testing.T) {
	s := NewSounder()
	// No speaker: play must be a safe no-op.
	s.play(NewTone(440, 10*time.Millisecond, 0.1))
	s.Cleanup()
}
