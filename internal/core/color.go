package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Colors used by the dodger renderer.
const (
	ColorDefault     Color = iota
	ColorGray              // walls
	ColorOrange            // Ferris
	ColorGreen             // bugs
	ColorBrightWhite       // HUD text
	ColorBrightRed         // game over box
)
