// Package dodger implements Ferris Dodger: move Ferris left and right to
// avoid bugs falling from the top. Bugs that reach the bottom wall score a
// point; a bug touching Ferris ends the round.
package dodger

import (
	"math/rand"

	"github.com/vovakirdan/ferris-dodger/internal/config"
	"github.com/vovakirdan/ferris-dodger/internal/core"
)

// ID is the game identifier used for round records.
const ID = "dodger"

// Game implements the Ferris Dodger simulation.
type Game struct {
	cfg       config.DodgerConfig
	geom      Geometry
	player    Player
	bugs      *BugStore
	colliders []Collider // colliders[0] is the player, then the walls
	scheduler *SpawnScheduler
	rng       *rand.Rand
	sound     SoundSink
	mode      Mode
	score     int
	round     RoundSummary
}

// RoundSummary describes the current or last finished round.
type RoundSummary struct {
	Score    int
	Elapsed  float64 // Seconds spent in Play
	Spawned  int
	Scored   int
	Interval float64 // Spawn interval when the summary was taken
}

// New creates a game with the given configuration. A nil sink discards sounds.
// The configuration is assumed to be validated.
func New(cfg config.DodgerConfig, sink SoundSink) *Game {
	if sink == nil {
		sink = nopSink{}
	}

	geom := NewGeometry(cfg)
	player := Player{
		Pos:    core.Vec2{X: 0, Y: geom.PlayerY},
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
	}

	colliders := append([]Collider{{Name: "ferris", Box: player.Box(), Role: RoleDeath}}, buildWalls(cfg.Field)...)

	return &Game{
		cfg:       cfg,
		geom:      geom,
		player:    player,
		bugs:      NewBugStore(32),
		colliders: colliders,
		scheduler: NewSpawnScheduler(cfg.Spawner),
		rng:       rand.New(rand.NewSource(0)),
		sound:     sink,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Reset starts a fresh round and reseeds the RNG from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.restart()
}

// Step advances the simulation by dt seconds with the given held keys.
// Systems run in a fixed order: movement, spawn, collision, restart.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	if g.mode == ModePlay {
		g.round.Elapsed += dt
		g.player.Move(dt, Direction(in), g.geom.MaxX)
		fall(g.bugs, dt)
		if g.scheduler.Tick(dt) {
			g.spawnBug()
		}
	}

	result := core.StepResult{Scored: g.resolveCollisions()}

	if g.mode == ModeStop && in.Has(core.ActionRestart) {
		g.restart()
		result.Restarted = true
	}

	result.State = g.State()
	return result
}

// spawnBug creates a bug in a random column. Its speed grows with the score.
func (g *Game) spawnBug() BugID {
	g.round.Spawned++
	return g.bugs.Spawn(Bug{
		Pos:    core.Vec2{X: spawnColumnX(g.rng, g.cfg.Bugs), Y: g.geom.SpawnY},
		Width:  g.cfg.Bugs.Width,
		Height: g.cfg.Bugs.Height,
		Speed:  g.cfg.Bugs.SpeedAt(g.score),
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.mode == ModeStop,
	}
}

// Mode returns the current round mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Bugs returns copies of all live bugs.
func (g *Game) Bugs() []Bug {
	return g.bugs.Snapshot()
}

// Walls returns the static colliders.
func (g *Game) Walls() []Collider {
	return g.colliders[1:]
}

// Geometry returns the derived field positions.
func (g *Game) Geometry() Geometry {
	return g.geom
}

// HUD returns the display strings for the current state.
func (g *Game) HUD() HUD {
	return BuildHUD(g.mode, g.score)
}

// Round returns a summary of the round in progress or just stopped.
func (g *Game) Round() RoundSummary {
	r := g.round
	r.Score = g.score
	r.Interval = g.scheduler.Interval()
	return r
}
