package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/ferris-dodger/internal/core"
	"github.com/vovakirdan/ferris-dodger/internal/games/dodger"
)

// Strategy decides which keys are held for the next frame.
type Strategy interface {
	Name() string
	Decide(g *dodger.Game, dt float64) core.InputFrame
}

var strategies = map[string]func() Strategy{
	"idle":  func() Strategy { return idle{} },
	"sweep": func() Strategy { return &sweep{period: 1.5} },
	"dodge": func() Strategy { return dodge{horizon: 2.0} },
}

// NewStrategy returns the named strategy.
func NewStrategy(name string) (Strategy, error) {
	ctor, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("sim: unknown strategy %q (valid: %v)", name, StrategyNames())
	}
	return ctor(), nil
}

// StrategyNames lists the available strategies in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// idle never moves.
type idle struct{}

func (idle) Name() string { return "idle" }

func (idle) Decide(*dodger.Game, float64) core.InputFrame {
	return core.NewInputFrame()
}

// sweep walks left and right, switching direction every period seconds.
type sweep struct {
	period  float64
	elapsed float64
}

func (s *sweep) Name() string { return "sweep" }

func (s *sweep) Decide(_ *dodger.Game, dt float64) core.InputFrame {
	in := core.NewInputFrame()
	phase := int(s.elapsed / s.period)
	if phase%2 == 0 {
		in.Set(core.ActionLeft)
	} else {
		in.Set(core.ActionRight)
	}
	s.elapsed += dt
	return in
}

// dodge heads for the reachable spot whose next impact is furthest away.
// It only looks at where bugs will land, not at bugs it crosses on the way.
type dodge struct {
	horizon float64 // Impacts further away than this count as safe
}

func (dodge) Name() string { return "dodge" }

func (d dodge) Decide(g *dodger.Game, dt float64) core.InputFrame {
	in := core.NewInputFrame()
	p := g.Player()
	maxX := g.Geometry().MaxX
	bugs := g.Bugs()

	bestX, bestScore := p.Pos.X, math.Inf(-1)
	for x := -maxX; x <= maxX; x += p.Width / 6 {
		travel := math.Abs(x-p.Pos.X) / p.Speed
		score := math.Min(d.impactIn(p, x, bugs), d.horizon) - travel
		if score > bestScore {
			bestX, bestScore = x, score
		}
	}

	// Stay put when the current spot is as good as the best one.
	here := math.Min(d.impactIn(p, p.Pos.X, bugs), d.horizon)
	if here >= bestScore {
		return in
	}

	step := p.Speed * dt
	switch {
	case bestX < p.Pos.X-step/2:
		in.Set(core.ActionLeft)
	case bestX > p.Pos.X+step/2:
		in.Set(core.ActionRight)
	}
	return in
}

// impactIn returns the seconds until the first bug reaches a player standing
// at x, or +Inf when no bug above is in line.
func (dodge) impactIn(p dodger.Player, x float64, bugs []dodger.Bug) float64 {
	top := p.Pos.Y + p.Height/2
	soonest := math.Inf(1)
	for _, b := range bugs {
		if math.Abs(b.Pos.X-x)*2 >= b.Width+p.Width {
			continue
		}
		bottom := b.Pos.Y - b.Height/2
		if bottom < p.Pos.Y-p.Height/2 {
			continue // Already past the player
		}
		t := math.Max(bottom-top, 0) / b.Speed
		soonest = math.Min(soonest, t)
	}
	return soonest
}
