// dodger is Ferris Dodger in the terminal: move Ferris left and right and
// keep clear of the bugs falling from the top.
//
// Usage:
//
//	dodger play              - Play in this terminal
//	dodger serve             - Start SSH server for remote play
//	dodger sim               - Run a headless scripted game and print rounds
//	dodger config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--verbose             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ferris-dodger/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Ferris Dodger - dodge the falling bugs",
	Long: `Ferris Dodger is a small arcade game for the terminal. Move Ferris
left and right along the bottom of the field. Bugs that reach the floor
score a point; a bug that touches Ferris ends the round.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless scripted game
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play --difficulty hard --mute
  dodger serve --ssh :2222
  dodger sim --seconds 300 --strategy dodge --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger writing to stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.DodgerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DodgerConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DodgerConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
