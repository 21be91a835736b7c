package dodger

import "github.com/vovakirdan/ferris-dodger/internal/core"

// Direction turns held keys into a horizontal direction.
// Left alone is -1, right alone is +1, both or neither cancel to 0.
func Direction(in core.InputFrame) float64 {
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	return dir
}

// fall moves every bug down by its own speed. Bugs are not clamped and may
// leave the field if nothing resolves them first.
func fall(bugs *BugStore, dt float64) {
	bugs.Each(func(_ BugID, b *Bug) {
		b.Pos.Y -= dt * b.Speed
	})
}
