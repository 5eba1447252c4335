package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// Fade returns the color a cube of color c takes on when seen through fog.
// level is 0 (clear) to 3 (almost gone).
func (c Color) Fade(level int) Color {
	switch {
	case level <= 0:
		return c
	case level == 1:
		switch c {
		case ColorBrightRed:
			return ColorRed
		case ColorBrightGreen:
			return ColorGreen
		case ColorBrightYellow:
			return ColorYellow
		case ColorBrightCyan:
			return ColorCyan
		case ColorBrightWhite:
			return ColorWhite
		}
		return c
	case level == 2:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
