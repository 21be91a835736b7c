package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ferris-dodger/internal/audio"
	"github.com/vovakirdan/ferris-dodger/internal/core"
	"github.com/vovakirdan/ferris-dodger/internal/games/dodger"
	"github.com/vovakirdan/ferris-dodger/internal/platform/tui"
	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Ferris Dodger in the current terminal.

Controls:
  ←/→, A/D, H/L  - Move Ferris
  Space          - Restart after being hit
  Tab            - Show rounds played this session
  Ctrl+S         - Save a text screenshot to ~/.dodger/screenshots
  Q/Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower bugs, longer first spawn
  normal - Default values
  hard   - Faster bugs, shorter first spawn

Examples:
  dodger play
  dodger play --difficulty easy
  dodger play --mute
  dodger play --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the score sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var sink audio.Sink = audio.Nop{}
	if !flagMute {
		sink, err = audio.Open(cfg.Audio)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
			sink = audio.Nop{}
		}
	}
	defer sink.Close()

	// Rounds live only as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round store", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	session := uuid.NewString()
	game := dodger.New(cfg, sink)

	final, err := tui.Run(game, store, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Session:     session,
		Player:      os.Getenv("USER"),
		Hold:        cfg.Input.Hold(),
		Screenshots: true,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if saveErr := final.SaveErr(); saveErr != nil {
		logger.Warn("some rounds were not recorded", "error", saveErr)
	}

	if store != nil {
		printSessionRounds(store, session)
	}
	return nil
}

// printSessionRounds prints the best rounds of this run.
func printSessionRounds(store *storage.Store, session string) {
	rounds, err := store.SessionTopRounds(session, 5)
	if err != nil || len(rounds) == 0 {
		return
	}

	fmt.Println("Best rounds this session")
	fmt.Println("------------------------")
	fmt.Printf("%-6s %-8s %-8s %s\n", "Rank", "Score", "Time", "Bugs")
	for i, r := range rounds {
		fmt.Printf("%-6s %-8d %-8s %d\n",
			fmt.Sprintf("#%d", i+1),
			r.Score,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Spawned,
		)
	}
}
