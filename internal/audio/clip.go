package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/ferris-dodger/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Chirp notes, a rising two-tone power-up.
const (
	chirpLowFreq  = 660.0
	chirpHighFreq = 990.0
	chirpLowLen   = 60 * time.Millisecond
	chirpHighLen  = 90 * time.Millisecond
)

var clipFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// LoadClip builds the score sound into memory. An empty ScoreSound yields the
// synthesized chirp; otherwise the WAV file is decoded and resampled.
func LoadClip(cfg config.AudioConfig) (*beep.Buffer, error) {
	var (
		src beep.Streamer
		err error
	)
	if cfg.ScoreSound == "" {
		src, err = chirp(sampleRate)
	} else {
		src, err = decodeWAV(cfg.ScoreSound)
	}
	if err != nil {
		return nil, err
	}

	buf := beep.NewBuffer(clipFormat)
	buf.Append(&effects.Volume{Streamer: src, Base: 2, Volume: cfg.Volume})
	return buf, nil
}

func chirp(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, chirpLowFreq)
	if err != nil {
		return nil, fmt.Errorf("audio: chirp tone: %w", err)
	}
	high, err := generators.SineTone(sr, chirpHighFreq)
	if err != nil {
		return nil, fmt.Errorf("audio: chirp tone: %w", err)
	}

	// Half amplitude leaves headroom for overlapping plays.
	return &effects.Volume{
		Streamer: beep.Seq(beep.Take(sr.N(chirpLowLen), low), beep.Take(sr.N(chirpHighLen), high)),
		Base:     2,
		Volume:   -1,
	}, nil
}

func decodeWAV(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	// Buffer.Append drains the stream before returning, so the file can be
	// closed once the clip is built.
	var s beep.Streamer = &closingStreamer{StreamSeekCloser: streamer}
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return s, nil
}

// closingStreamer closes the underlying decoder once it is drained.
type closingStreamer struct {
	beep.StreamSeekCloser
	closed bool
}

func (c *closingStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.StreamSeekCloser.Stream(samples)
	if !ok && !c.closed {
		c.closed = true
		c.StreamSeekCloser.Close()
	}
	return n, ok
}
