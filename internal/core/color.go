package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightRed
	ColorOrange
	ColorGray
)

// Roles used by the arena renderer and the HUD.
const (
	ColorTile       = ColorCyan
	ColorTileAccent = ColorBrightGreen
	ColorBackspace  = ColorBlue
	ColorExit       = ColorBrightRed
	ColorBird       = ColorOrange
	ColorFinish     = ColorWhite
	ColorCorrect    = ColorGreen
	ColorIncorrect  = ColorRed
	ColorPending    = ColorGray
	ColorCursor     = ColorYellow
)
