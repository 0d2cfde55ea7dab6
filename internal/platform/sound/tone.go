// Package sound turns game cues into short synthesized tones.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/runic/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
	WaveSquare
)

// Glide controls how the pitch moves between a tone's frequencies.
type Glide int

const (
	GlideStep   Glide = iota // jump to the next frequency every StepDur
	GlideLinear              // linear sweep from first to last
	GlideExp                 // exponential sweep from first to last
)

// Decay controls the amplitude envelope.
type Decay int

const (
	DecayExp Decay = iota
	DecayLinear
)

// Tone describes one cue's sound.
type Tone struct {
	Wave     Wave
	Freqs    []float64
	Glide    Glide
	StepDur  time.Duration
	Duration time.Duration
	Gain     float64
	Decay    Decay
}

// ToneFor returns the tone played for a cue. CueNone has no tone.
func ToneFor(c core.Cue) (Tone, bool) {
	switch c {
	case core.CueMove:
		return Tone{Wave: WaveTriangle, Freqs: []float64{300, 400}, Duration: 100 * time.Millisecond, Gain: 0.05}, true
	case core.CueMatch:
		return Tone{Wave: WaveSine, Freqs: []float64{400, 600, 800}, StepDur: 100 * time.Millisecond, Duration: 400 * time.Millisecond, Gain: 0.1}, true
	case core.CueLevelUp:
		return Tone{Wave: WaveSine, Freqs: []float64{500, 800, 1200}, StepDur: 100 * time.Millisecond, Duration: 400 * time.Millisecond, Gain: 0.1}, true
	case core.CueMerge:
		return Tone{Wave: WaveSine, Freqs: []float64{300, 200}, Glide: GlideExp, Duration: 300 * time.Millisecond, Gain: 0.2}, true
	case core.CueDiscard:
		return Tone{Wave: WaveSaw, Freqs: []float64{150, 100}, Glide: GlideLinear, Duration: 200 * time.Millisecond, Gain: 0.1, Decay: DecayLinear}, true
	case core.CueInvalid:
		return Tone{Wave: WaveSquare, Freqs: []float64{150, 150}, Duration: 120 * time.Millisecond, Gain: 0.05, Decay: DecayLinear}, true
	}
	return Tone{}, false
}

// freqAt returns the pitch at sample position pos.
func (t Tone) freqAt(pos, total int, rate beep.SampleRate) float64 {
	if len(t.Freqs) == 0 {
		return 0
	}
	first, last := t.Freqs[0], t.Freqs[len(t.Freqs)-1]
	progress := float64(pos) / float64(total)

	switch t.Glide {
	case GlideLinear:
		return first + (last-first)*progress
	case GlideExp:
		return first * math.Pow(last/first, progress)
	}

	if t.StepDur <= 0 {
		return first
	}
	i := pos / rate.N(t.StepDur)
	if i >= len(t.Freqs) {
		i = len(t.Freqs) - 1
	}
	return t.Freqs[i]
}

// envelope falls from Gain to a near-silent floor over the tone.
func (t Tone) envelope(pos, total int) float64 {
	progress := float64(pos) / float64(total)
	const floor = 0.001
	if t.Decay == DecayLinear {
		return t.Gain + (floor-t.Gain)*progress
	}
	return t.Gain * math.Pow(floor/t.Gain, progress)
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

// Streamer returns a finite beep.Streamer for the tone at the given rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	if total < 1 {
		total = 1
	}
	return &toneStreamer{tone: t, rate: rate, total: total}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(s.phase-0.5)
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		}
		val *= s.tone.envelope(s.pos, s.total)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.tone.freqAt(s.pos, s.total, s.rate) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// withVolume scales a stream by a linear factor; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
