package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a fixed-frequency sine with a short fade at both ends to avoid
// clicks at the sample boundaries.
type tone struct {
	freq    float64
	volume  float64
	pos     int
	samples int
	fade    int
}

// NewTone generates a sine beep of the given frequency and duration.
func NewTone(freq float64, duration time.Duration, volume float64) beep.Streamer {
	return &tone{
		freq:    freq,
		volume:  volume,
		samples: sampleRate.N(duration),
		fade:    sampleRate.N(5 * time.Millisecond),
	}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)
		val := g.volume * math.Sin(2*math.Pi*g.freq*t) * g.envelope()

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *tone) envelope() float64 {
	if g.fade == 0 {
		return 1
	}
	if g.pos < g.fade {
		return float64(g.pos) / float64(g.fade)
	}
	if remaining := g.samples - g.pos; remaining < g.fade {
		return float64(remaining) / float64(g.fade)
	}
	return 1
}

func (g *tone) Err() error { return nil }

// sweep glides between two frequencies with an exponential decay.
type sweep struct {
	from    float64
	to      float64
	volume  float64
	phase   float64
	pos     int
	samples int
}

// NewSweep generates a frequency glide, used for the game-over fall.
func NewSweep(from, to float64, duration time.Duration, volume float64) beep.Streamer {
	return &sweep{
		from:    from,
		to:      to,
		volume:  volume,
		samples: sampleRate.N(duration),
	}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		decay := math.Exp(-2 * progress)
		val := g.volume * decay * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }
