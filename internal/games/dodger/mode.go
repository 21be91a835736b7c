package dodger

// Mode is the round state.
type Mode int

const (
	ModePlay Mode = iota // Entities move and bugs spawn
	ModeStop             // Frozen until restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "Play"
	case ModeStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// restart returns a stopped round to its initial state. The RNG keeps its
// sequence so consecutive rounds differ.
func (g *Game) restart() {
	g.score = 0
	g.bugs.Clear()
	g.player.Pos.X = 0
	g.scheduler.Reset()
	g.round = RoundSummary{}
	g.mode = ModePlay
}
