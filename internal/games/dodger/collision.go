package dodger

import "github.com/vovakirdan/ferris-dodger/internal/core"

// SoundSink receives fire-and-forget sound triggers from the resolver.
// Implementations must not block the frame.
type SoundSink interface {
	PlayScore()
}

type nopSink struct{}

func (nopSink) PlayScore() {}

// firstHit returns the first collider with a role that overlaps box.
func firstHit(box core.Box, colliders []Collider) (Collider, bool) {
	for _, c := range colliders {
		if c.Role == RoleNone {
			continue
		}
		if box.Overlaps(c.Box) {
			return c, true
		}
	}
	return Collider{}, false
}

// resolveCollisions tests every live bug against the colliders and applies
// at most one action per bug. Returns the number of bugs scored.
func (g *Game) resolveCollisions() int {
	g.colliders[0].Box = g.player.Box()

	scored := 0
	g.bugs.Each(func(id BugID, b *Bug) {
		hit, ok := firstHit(b.Box(), g.colliders)
		if !ok {
			return
		}
		switch hit.Role {
		case RoleScorable:
			g.sound.PlayScore()
			g.score++
			g.bugs.Despawn(id)
			scored++
		case RoleDeath:
			// The bug stays where it is; restart clears it.
			g.mode = ModeStop
		}
	})

	g.round.Scored += scored
	return scored
}
