package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPurple
	ColorDarkGray
)

// RGB maps a 24-bit color to the closest palette entry.
// Only hue families used by the games are distinguished.
func RGB(r, g, b uint8) Color {
	switch {
	case r > 200 && g > 200 && b < 100:
		return ColorBrightYellow
	case r >= 150 && g >= 100 && b < 60:
		return ColorOrange
	case r >= 100 && g < 100 && b < 60:
		return ColorRed
	case r >= 100 && g >= 50 && b < 60:
		return ColorBrown
	case g > r && g > b:
		return ColorGreen
	case b > r && b > g:
		return ColorBlue
	default:
		return ColorGray
	}
}
