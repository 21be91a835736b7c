// Package sim runs the dodger headless at a fixed frame rate, driven by a
// scripted strategy instead of a keyboard.
package sim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/ferris-dodger/internal/config"
	"github.com/vovakirdan/ferris-dodger/internal/core"
	"github.com/vovakirdan/ferris-dodger/internal/games/dodger"
	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

// Options configures a simulation run.
type Options struct {
	Seconds  float64 // Simulated time to run
	FPS      int     // Fixed frame rate
	Seed     int64
	Strategy string
	Session  string // Round records are stored under this session
}

// Result summarizes a simulation run.
type Result struct {
	Strategy string
	Frames   int
	Rounds   []dodger.RoundSummary // Finished rounds in order
	Current  dodger.RoundSummary   // Round still running when time ran out
	Sounds   int                   // Score sounds triggered
}

// Best returns the highest score over finished rounds and the current one.
func (r Result) Best() int {
	best := r.Current.Score
	for _, round := range r.Rounds {
		best = max(best, round.Score)
	}
	return best
}

type countingSink struct {
	plays int
}

func (c *countingSink) PlayScore() {
	c.plays++
}

// Run simulates the game for opts.Seconds. A stopped round is recorded and
// restarted on the next frame. store may be nil.
func Run(cfg config.DodgerConfig, store *storage.Store, opts Options) (Result, error) {
	if opts.FPS <= 0 {
		return Result{}, fmt.Errorf("sim: fps must be positive, got %d", opts.FPS)
	}
	if opts.Seconds < 0 {
		return Result{}, fmt.Errorf("sim: seconds must not be negative, got %v", opts.Seconds)
	}

	strategy, err := NewStrategy(opts.Strategy)
	if err != nil {
		return Result{}, err
	}

	sink := &countingSink{}
	game := dodger.New(cfg, sink)
	game.Reset(core.RuntimeConfig{TickRate: opts.FPS, Seed: opts.Seed})

	dt := 1.0 / float64(opts.FPS)
	frames := int(opts.Seconds * float64(opts.FPS))
	res := Result{Strategy: strategy.Name(), Frames: frames}

	for i := 0; i < frames; i++ {
		var in core.InputFrame
		if game.State().GameOver {
			in = core.NewInputFrame()
			in.Set(core.ActionRestart)
		} else {
			in = strategy.Decide(game, dt)
		}

		// The round summary must be taken before the restart clears it.
		if game.State().GameOver {
			round := game.Round()
			res.Rounds = append(res.Rounds, round)
			if err := saveRound(store, opts, round); err != nil {
				return res, err
			}
		}

		game.Step(in, dt)
	}

	res.Current = game.Round()
	res.Sounds = sink.plays
	return res, nil
}

func saveRound(store *storage.Store, opts Options, r dodger.RoundSummary) error {
	if store == nil {
		return nil
	}
	_, err := store.SaveRound(storage.Round{
		Session: opts.Session,
		Player:  opts.Strategy,
		Score:   r.Score,
		Elapsed: time.Duration(r.Elapsed * float64(time.Second)),
		Spawned: r.Spawned,
		Scored:  r.Scored,
	})
	return err
}
