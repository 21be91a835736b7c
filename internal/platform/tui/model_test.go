package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ferris-dodger/internal/audio"
	"github.com/vovakirdan/ferris-dodger/internal/config"
	"github.com/vovakirdan/ferris-dodger/internal/core"
	"github.com/vovakirdan/ferris-dodger/internal/games/dodger"
	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T) (Model, *dodger.Game, *storage.Store, *testClock) {
	t.Helper()

	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := dodger.New(config.DefaultConfig(), audio.Nop{})
	m := NewModel(game, store, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 2024},
		Session: "test-session",
		Player:  "tester",
		Hold:    180 * time.Millisecond,
	})

	clock := &testClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m.now = clock.now

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game, store, clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model, clock *testClock, d time.Duration) Model {
	t.Helper()
	clock.t = clock.t.Add(d)
	m, _ = send(t, m, TickMsg(clock.t))
	return m
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game, _, clock := newTestModel(t)

	m = tick(t, m, clock, 0) // First tick only sets the clock
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, clock, 50*time.Millisecond)
	m = tick(t, m, clock, 50*time.Millisecond)

	if x := game.Player().Pos.X; math.Abs(x-50) > 1e-9 {
		t.Errorf("player x = %v after 100ms held right, expected 50", x)
	}

	// Hold window expires without another press
	m = tick(t, m, clock, 100*time.Millisecond)
	x := game.Player().Pos.X
	m = tick(t, m, clock, 100*time.Millisecond)
	if game.Player().Pos.X != x {
		t.Error("player should stop once the key is no longer held")
	}
}

func TestModelClampsLongFrames(t *testing.T) {
	m, game, _, clock := newTestModel(t)

	m = tick(t, m, clock, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, clock, 150*time.Millisecond)

	if x := game.Player().Pos.X; math.Abs(x+50) > 1e-9 {
		t.Errorf("a 150ms frame should be clamped to 100ms, x = %v", x)
	}
}

func TestModelRecordsRoundOnceAndRestarts(t *testing.T) {
	m, game, store, clock := newTestModel(t)

	m = tick(t, m, clock, 0)
	for i := 0; i < 5000 && !m.State().GameOver; i++ {
		m = tick(t, m, clock, 100*time.Millisecond)
	}
	if !m.State().GameOver {
		t.Fatal("idle player should eventually be hit")
	}

	// More frames while stopped must not record again
	for i := 0; i < 10; i++ {
		m = tick(t, m, clock, 100*time.Millisecond)
	}

	rounds, err := store.SessionRounds("test-session", 10)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected one recorded round, got %d", len(rounds))
	}
	if rounds[0].Score != game.Score() || rounds[0].Player != "tester" {
		t.Errorf("unexpected round record: %+v", rounds[0])
	}
	if m.SaveErr() != nil {
		t.Errorf("unexpected save error: %v", m.SaveErr())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m, clock, 16*time.Millisecond)

	if m.State().GameOver || game.Score() != 0 || len(game.Bugs()) != 0 {
		t.Error("space should restart a stopped round")
	}
}

func TestModelSpaceIgnoredWhilePlaying(t *testing.T) {
	m, game, _, clock := newTestModel(t)

	m = tick(t, m, clock, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m, clock, 16*time.Millisecond)

	if m.State().GameOver || game.Mode() != dodger.ModePlay {
		t.Error("space during play should not change the round")
	}
	if m.restart {
		t.Error("restart request should be consumed by the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-helpRows)
	}
}

func TestModelViewAndLeaderboard(t *testing.T) {
	m, _, store, clock := newTestModel(t)
	m = tick(t, m, clock, 0)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "restart") {
		t.Error("view should contain the key help")
	}

	store.SaveRound(storage.Round{Session: "other", Player: "someone", Score: 9})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view = m.View()
	if !strings.Contains(view, "BEST ROUNDS") {
		t.Error("tab should show the leaderboard")
	}
	if len(m.board.Rounds()) != 1 {
		t.Errorf("leaderboard should load 1 round, got %d", len(m.board.Rounds()))
	}

	// Direction keys scroll the board instead of moving Ferris
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	f := core.NewInputFrame()
	m.held.Apply(&f, clock.t)
	if f.Has(core.ActionLeft) {
		t.Error("keys should not reach the game while the leaderboard is shown")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(m.View(), "BEST ROUNDS") {
		t.Error("second tab should hide the leaderboard")
	}
}

func TestModelPausesWhileLeaderboardShown(t *testing.T) {
	m, game, _, clock := newTestModel(t)

	m = tick(t, m, clock, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, clock, 50*time.Millisecond)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	before := game.Round()
	x := game.Player().Pos.X

	var cmd tea.Cmd
	for i := 0; i < 600; i++ {
		clock.t = clock.t.Add(50 * time.Millisecond)
		m, cmd = send(t, m, TickMsg(clock.t))
		if cmd == nil {
			t.Fatal("ticks should keep running while the leaderboard is shown")
		}
	}

	if after := game.Round(); after != before {
		t.Errorf("round changed while the leaderboard was shown: before=%+v after=%+v", before, after)
	}
	if game.Player().Pos.X != x {
		t.Error("player should not move while the leaderboard is shown")
	}
	if game.Mode() != dodger.ModePlay {
		t.Errorf("mode = %v, expected Play", game.Mode())
	}

	// Closing the board resumes with a normal frame and no held direction
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = tick(t, m, clock, 50*time.Millisecond)

	if got := game.Round().Elapsed - before.Elapsed; math.Abs(got-0.05) > 1e-9 {
		t.Errorf("first frame after closing advanced %v, expected 0.05", got)
	}
	if game.Player().Pos.X != x {
		t.Error("opening the leaderboard should release held directions")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "abc", core.ColorOrange)
	s.DrawText(3, 0, "def")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "def") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
