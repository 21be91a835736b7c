package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ferris-dodger/internal/storage"
)

const maxRounds = 50 // Max rounds to load into the table

// LeaderboardModel shows the best rounds recorded in this process.
// It is embedded in the play model and toggled over the field.
type LeaderboardModel struct {
	store   *storage.Store
	session string
	rounds  []storage.Round
	table   table.Model
	width   int
	height  int
	err     error
}

// NewLeaderboardModel creates a leaderboard. Rounds from session are
// highlighted.
func NewLeaderboardModel(store *storage.Store, session string, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		store:   store,
		session: session,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 14},
		{Title: "Time", Width: 8},
		{Title: "Bugs", Width: 6},
	}

	if m.width < 56 {
		columns = columns[:3]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, border and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads rounds from the store.
func (m *LeaderboardModel) Refresh() {
	m.rounds = nil
	m.err = nil
	if m.store != nil {
		m.rounds, m.err = m.store.TopRounds(maxRounds)
	}
	m.updateTableRows()
}

// SetSize rebuilds the table for a new terminal size.
func (m *LeaderboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

func (m *LeaderboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		player := r.Player
		if r.Session == m.session {
			player = "* " + player
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			player,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			fmt.Sprintf("%d", r.Spawned),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update passes scrolling keys to the table.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("BEST ROUNDS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m LeaderboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Leaderboard unavailable:\n" + m.err.Error())
	}
	if len(m.rounds) == 0 {
		return emptyStyle.Render("No rounds finished yet.\nDodge some bugs first!")
	}
	return m.table.View()
}

// Rounds returns the loaded rounds.
func (m LeaderboardModel) Rounds() []storage.Round {
	return m.rounds
}
