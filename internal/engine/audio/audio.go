// Package audio provides sound effect playback on top of beep.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Sound is a fully decoded clip that can be played any number of times.
type Sound struct {
	buffer *beep.Buffer
}

// LoadSound decodes a WAV file into memory.
func LoadSound(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()
	return DecodeSound(f)
}

// DecodeSound decodes WAV data from r into memory.
func DecodeSound(r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return &Sound{buffer: buf}, nil
}

// Format returns the clip's native format.
func (s *Sound) Format() beep.Format {
	return s.buffer.Format()
}

// Len returns the number of frames in the clip.
func (s *Sound) Len() int {
	return s.buffer.Len()
}

// Duration returns the clip length at its native sample rate.
func (s *Sound) Duration() time.Duration {
	return s.buffer.Format().SampleRate.D(s.buffer.Len())
}

// Manager handles audio playback for the engine.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	log         *zap.Logger

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// Mixer for concurrent sound effects
	mixer *beep.Mixer
}

// New creates a new audio manager. A nil logger disables logging.
func New(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:          log,
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops all playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences new sounds without touching the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// IsMuted reports whether playback is muted.
func (m *Manager) IsMuted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// effectiveVolume is the 0-1 gain a new sound plays at, scaled by volume.
func (m *Manager) effectiveVolume(volume float64) float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.sfxVolLevel * clamp(volume, 0, 1)
}

// Play mixes a sound in at the given volume (0-1) and speed (1 = native).
func (m *Manager) Play(s *Sound, volume, speed float64) error {
	m.mu.RLock()
	initialized := m.initialized
	gain := m.effectiveVolume(volume)
	rate := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if gain <= 0 {
		return nil
	}

	var streamer beep.Streamer = s.buffer.Streamer(0, s.buffer.Len())
	if from := s.buffer.Format().SampleRate; from != rate {
		streamer = beep.Resample(4, from, rate, streamer)
	}
	if speed > 0 && speed != 1 {
		streamer = beep.ResampleRatio(4, speed, streamer)
	}

	speaker.Lock()
	m.mixer.Add(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   gainToVolume(gain),
	})
	speaker.Unlock()
	return nil
}

// gainToVolume converts a linear 0-1 gain to the base-2 exponent used by
// effects.Volume: 1 -> 0, 0.5 -> -1 (about -6dB).
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(gain)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
