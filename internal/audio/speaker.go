// Package audio plays the score sound. The clip is decoded once at startup
// and replayed from memory so triggering it never blocks a frame.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ferris-dodger/internal/config"
)

// Sink is a sound output the game can trigger.
type Sink interface {
	PlayScore()
	Close()
}

// Speaker plays clips on the local audio device.
type Speaker struct {
	mu     sync.Mutex
	clip   *beep.Buffer
	closed bool
}

// NewSpeaker loads the score clip and opens the audio device.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	clip, err := LoadClip(cfg)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	return &Speaker{clip: clip}, nil
}

// Open returns a Speaker when audio is enabled, or a Nop sink otherwise.
func Open(cfg config.AudioConfig) (Sink, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	s, err := NewSpeaker(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// PlayScore queues the score clip. Overlapping plays are mixed.
func (s *Speaker) PlayScore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Play(s.clip.Streamer(0, s.clip.Len()))
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Nop discards every sound. Used for muted play, headless runs and SSH
// sessions, which have no local device.
type Nop struct{}

// PlayScore does nothing.
func (Nop) PlayScore() {}

// Close does nothing.
func (Nop) Close() {}
