package dodger

import (
	"math/rand"

	"github.com/vovakirdan/ferris-dodger/internal/config"
)

// SpawnScheduler is a repeating countdown whose interval shrinks
// geometrically every time it fires.
type SpawnScheduler struct {
	initial  float64
	interval float64
	elapsed  float64
	factor   float64
	fired    int
}

// NewSpawnScheduler creates a scheduler from the spawner config.
func NewSpawnScheduler(cfg config.SpawnerConfig) *SpawnScheduler {
	return &SpawnScheduler{
		initial:  cfg.InitialInterval,
		interval: cfg.InitialInterval,
		factor:   cfg.ShrinkFactor,
	}
}

// Tick accumulates dt and reports whether the timer fired. Firing clears the
// accumulator and shrinks the interval. It fires at most once per call.
func (s *SpawnScheduler) Tick(dt float64) bool {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}
	s.elapsed = 0
	s.interval *= s.factor
	s.fired++
	return true
}

// Reset restores the initial interval and clears the accumulator.
func (s *SpawnScheduler) Reset() {
	s.interval = s.initial
	s.elapsed = 0
	s.fired = 0
}

// Interval returns the current countdown duration in seconds.
func (s *SpawnScheduler) Interval() float64 {
	return s.interval
}

// Elapsed returns the time accumulated toward the next fire.
func (s *SpawnScheduler) Elapsed() float64 {
	return s.elapsed
}

// Fired returns how many times the scheduler fired since the last reset.
func (s *SpawnScheduler) Fired() int {
	return s.fired
}

// spawnColumnX picks a spawn x uniformly from the configured columns.
// Column k is centered at k*width + width/2.
func spawnColumnX(rng *rand.Rand, bugs config.BugsConfig) float64 {
	k := bugs.MinColumn + rng.Intn(bugs.Columns())
	return float64(k)*bugs.Width + bugs.Width/2
}
