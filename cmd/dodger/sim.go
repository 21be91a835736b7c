package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ferris-dodger/internal/sim"
	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

var (
	flagSimSeconds  float64
	flagSimStrategy string
	flagSimTop      int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted game",
	Long: `Run the game without a terminal at a fixed frame rate. A scripted
strategy holds the keys; every lost round is restarted right away.
The same seed, fps and strategy always produce the same rounds.

Strategies:
  ` + strings.Join(sim.StrategyNames(), ", ") + `

Examples:
  dodger sim
  dodger sim --strategy dodge --seconds 600 --seed 7
  dodger sim --difficulty hard --fps 30`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Simulated seconds to run")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "dodge", "Input strategy")
	simCmd.Flags().IntVar(&flagSimTop, "top", 10, "Number of best rounds to print")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	res, err := sim.Run(cfg, store, sim.Options{
		Seconds:  flagSimSeconds,
		FPS:      flagFPS,
		Seed:     seed,
		Strategy: flagSimStrategy,
		Session:  "sim",
	})
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "frames", res.Frames, "wall", time.Since(start).Round(time.Millisecond))

	fmt.Printf("Strategy %s, seed %d, %d frames at %d fps\n", res.Strategy, seed, res.Frames, flagFPS)
	fmt.Printf("Rounds lost: %d, best score: %d, score sounds: %d\n", len(res.Rounds), res.Best(), res.Sounds)
	fmt.Printf("Round in progress: score %d after %.1fs (spawn interval %.3fs)\n",
		res.Current.Score, res.Current.Elapsed, res.Current.Interval)

	rounds, err := store.TopRounds(flagSimTop)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("%-6s %-8s %-9s %-8s %s\n", "Rank", "Score", "Time", "Spawned", "Scored")
	fmt.Println(strings.Repeat("-", 42))
	for i, r := range rounds {
		fmt.Printf("%-6s %-8d %-9s %-8d %d\n",
			fmt.Sprintf("#%d", i+1),
			r.Score,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Spawned,
			r.Scored,
		)
	}
	return nil
}
