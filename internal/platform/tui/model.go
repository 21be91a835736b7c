package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ferris-dodger/internal/core"
	"github.com/vovakirdan/ferris-dodger/internal/games/dodger"
	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

// helpRows is the number of rows reserved below the field for key help.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a play session.
type Options struct {
	Runtime     core.RuntimeConfig
	Session     string        // Identifies the run in round records
	Player      string        // Shown on the leaderboard
	Hold        time.Duration // How long a direction press stays held
	Screenshots bool          // Allow ctrl+s to write the screen to disk
	Logger      *log.Logger   // Optional; nil discards
}

// Model is the Bubble Tea model that drives a dodger game.
type Model struct {
	game       *dodger.Game
	screen     *core.Screen
	store      *storage.Store
	opts       Options
	keys       KeyMap
	help       help.Model
	board      LeaderboardModel
	showBoard  bool
	held       HeldKeys
	restart    bool // Restart pressed since the last tick
	lastTick   time.Time
	now        func() time.Time
	gameState  core.GameState
	roundSaved bool // Whether the stopped round has been recorded
	saveErr    error
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *dodger.Game, store *storage.Store, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = "ferris"
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH-helpRows
	h = core.Max(h, 1)

	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		store:  store,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		board:  NewLeaderboardModel(store, opts.Session, w, h),
		held:   NewHeldKeys(opts.Hold),
		now:    time.Now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leaderboard):
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.held.Release()
			m.restart = false
			m.board.Refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if m.opts.Screenshots {
			m.saveScreenshot()
		}
		return m, nil
	}

	if m.showBoard {
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionLeft, core.ActionRight:
		m.held.Press(a, m.now())
	case core.ActionRestart:
		m.restart = true
	}

	return m, nil
}

// handleResize processes window resize events. The field is logical, so
// the round keeps going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height

	h := core.Max(msg.Height-helpRows, 1)
	m.screen.Resize(msg.Width, h)
	m.board.SetSize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
// The round is paused while the leaderboard is shown.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := core.FrameDelta(m.lastTick, now)
	m.lastTick = now

	if m.showBoard {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	frame := core.NewInputFrame()
	m.held.Apply(&frame, now)
	if m.restart {
		frame.Set(core.ActionRestart)
		m.restart = false
	}

	result := m.game.Step(frame, dt)
	m.gameState = result.State

	if result.Restarted {
		m.roundSaved = false
	}

	// Record the round once when it stops
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRound records the stopped round. Failures are kept for the caller and
// never interrupt play.
func (m *Model) saveRound() {
	if m.store == nil {
		return
	}

	r := m.game.Round()
	_, err := m.store.SaveRound(storage.Round{
		Session: m.opts.Session,
		Player:  m.opts.Player,
		Score:   r.Score,
		Elapsed: time.Duration(r.Elapsed * float64(time.Second)),
		Spawned: r.Spawned,
		Scored:  r.Scored,
	})
	if err != nil {
		m.saveErr = err
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save round", "session", m.opts.Session, "error", err)
		}
		return
	}

	if m.opts.Logger != nil {
		m.opts.Logger.Debug("round saved", "session", m.opts.Session, "score", r.Score, "elapsed", r.Elapsed)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dodger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showBoard {
		body = m.board.View()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// SaveErr returns the last error from recording a round, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// Run starts the Bubble Tea program and returns the final model.
func Run(game *dodger.Game, store *storage.Store, opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, store, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	m, _ := final.(Model)
	return m, nil
}
