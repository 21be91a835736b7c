package dodger

import (
	"github.com/vovakirdan/ferris-dodger/internal/config"
	"github.com/vovakirdan/ferris-dodger/internal/core"
)

// Role tags a collider with what a bug touching it triggers.
type Role int

const (
	RoleNone     Role = iota // Inert, never resolved
	RoleDeath                // Ends the round
	RoleScorable             // Scores and removes the bug
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RoleDeath:
		return "Death"
	case RoleScorable:
		return "Scorable"
	default:
		return "Unknown"
	}
}

// Collider is a static or player-attached rectangle bugs are tested against.
type Collider struct {
	Name string
	Box  core.Box
	Role Role
}

// Player is the Ferris sprite. Only Pos.X changes during play.
type Player struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64 // Horizontal units per second
}

// Box returns the player's collision rectangle.
func (p Player) Box() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}

// Move advances the player horizontally and keeps it between the walls.
// dir is -1, 0 or +1.
func (p *Player) Move(dt, dir, maxX float64) {
	p.Pos.X = core.ClampF(p.Pos.X+dt*dir*p.Speed, -maxX, maxX)
}

// Geometry holds the fixed positions derived from the field configuration.
type Geometry struct {
	PlayerY float64 // Resting y of the player, near the bottom wall
	MaxX    float64 // Largest |x| the player center may reach
	SpawnY  float64 // y at which bugs appear, near the top wall
}

// NewGeometry derives positions from the field, player and wall sizes.
func NewGeometry(cfg config.DodgerConfig) Geometry {
	playerY := -cfg.Field.Height/2 + cfg.Player.Height
	return Geometry{
		PlayerY: playerY,
		MaxX:    cfg.Field.Width/2 - cfg.Field.WallThickness - cfg.Player.Width/2,
		SpawnY:  -playerY - cfg.Player.Height,
	}
}

// buildWalls creates the four static walls: left, right, bottom, top.
// Only the bottom wall carries a role; bugs fall straight down and the
// others are never meant to resolve.
func buildWalls(f config.FieldConfig) []Collider {
	w, h, t := f.Width, f.Height, f.WallThickness
	return []Collider{
		{Name: "left", Box: core.NewBox(-w/2, 0, t, h+t)},
		{Name: "right", Box: core.NewBox(w/2, 0, t, h+t)},
		{Name: "bottom", Box: core.NewBox(0, -h/2, w+t, t), Role: RoleScorable},
		{Name: "top", Box: core.NewBox(0, h/2, w+t, t)},
	}
}
