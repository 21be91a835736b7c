package dodger

import "fmt"

// HUD is the text the renderer shows. It is derived from game state and
// never feeds back into it.
type HUD struct {
	Score        string
	Final        string // Empty while playing
	FinalVisible bool
}

// BuildHUD derives the display strings for the given mode and score.
func BuildHUD(mode Mode, score int) HUD {
	hud := HUD{Score: fmt.Sprintf("Score: %d", score)}
	if mode == ModeStop {
		hud.Final = fmt.Sprintf("You panic! Final score: %d\nPress <space> to restart!", score)
		hud.FinalVisible = true
	}
	return hud
}
