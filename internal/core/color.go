package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. Tile colors follow the usual 2048 warm progression.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorGreen
)

// tileColors indexes by log2(value) - 1.
var tileColors = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorBrightYellow,  // 16
	ColorOrange,        // 32
	ColorRed,           // 64
	ColorBrightRed,     // 128
	ColorMagenta,       // 256
	ColorBrightMagenta, // 512
	ColorCyan,          // 1024
	ColorGreen,         // 2048
}

// TileColor returns the color used to draw a tile of the given value.
// Values past the table reuse its last color.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	idx := -1
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tileColors) {
		idx = len(tileColors) - 1
	}
	return tileColors[idx]
}
