package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/runic/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues. Implementations must be safe to call from the UI loop.
type Player interface {
	Play(c core.Cue)
	SetEnabled(on bool)
	Close()
}

// Silent is a Player that does nothing. Used for SSH sessions and --mute.
type Silent struct{}

func (Silent) Play(core.Cue)   {}
func (Silent) SetEnabled(bool) {}
func (Silent) Close()          {}

// Options configures the speaker-backed player.
type Options struct {
	Enabled bool
	Volume  float64 // linear, 0..1
}

// Speaker plays cues through the local audio device.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	volume  float64
	closed  bool
}

// NewSpeaker opens the audio device and starts the mixer.
func NewSpeaker(opts Options) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: cannot init speaker: %w", err)
	}

	s := &Speaker{
		mixer:   &beep.Mixer{},
		enabled: opts.Enabled,
		volume:  opts.Volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Open returns a Speaker when sound is enabled and the device opens,
// falling back to Silent otherwise.
func Open(opts Options, logger *log.Logger) Player {
	if !opts.Enabled {
		return Silent{}
	}
	sp, err := NewSpeaker(opts)
	if err != nil {
		if logger != nil {
			logger.Warn("Sound disabled", "err", err)
		}
		return Silent{}
	}
	return sp
}

// Play queues the cue's tone on the mixer.
func (s *Speaker) Play(c core.Cue) {
	tone, ok := ToneFor(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(withVolume(tone.Streamer(sampleRate), s.volume))
	speaker.Unlock()
}

// SetEnabled toggles playback without releasing the device.
func (s *Speaker) SetEnabled(on bool) {
	s.mu.Lock()
	s.enabled = on
	s.mu.Unlock()
}

// Close drops pending tones and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Recorder collects cues in memory. Tests use it in place of a device.
type Recorder struct {
	mu      sync.Mutex
	cues    []core.Cue
	enabled bool
}

// NewRecorder returns an enabled Recorder.
func NewRecorder() *Recorder { return &Recorder{enabled: true} }

func (r *Recorder) Play(c core.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enabled && c != core.CueNone {
		r.cues = append(r.cues, c)
	}
}

func (r *Recorder) SetEnabled(on bool) {
	r.mu.Lock()
	r.enabled = on
	r.mu.Unlock()
}

func (r *Recorder) Close() {}

// Cues returns a copy of everything played so far.
func (r *Recorder) Cues() []core.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Cue(nil), r.cues...)
}
