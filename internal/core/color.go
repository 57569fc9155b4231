package core

// Color is a logical foreground color for a screen cell.
// The platform layer maps it to a terminal color.
type Color uint8

// Liquid colors follow the tube palette order so a palette index converts
// with LiquidColor. UI colors follow.
const (
	ColorDefault Color = iota
	ColorPink
	ColorPurple
	ColorViolet
	ColorBlue
	ColorTeal
	ColorGreen
	ColorOlive
	ColorYellow
	ColorOrange
	ColorRed
	ColorGray
	ColorWhite
	ColorFrame     // Tube outline
	ColorHighlight // Hovered or selected tube
	ColorDim       // Secondary text
	ColorSuccess   // Level complete banner
)

// liquidCount is the number of palette colors.
const liquidCount = int(ColorWhite - ColorPink + 1)

// LiquidColor converts a zero-based palette index to its cell color.
// Out-of-range indices map to ColorDefault.
func LiquidColor(index int) Color {
	if index < 0 || index >= liquidCount {
		return ColorDefault
	}
	return ColorPink + Color(index)
}

// IsLiquid reports whether c is one of the palette colors.
func (c Color) IsLiquid() bool {
	return c >= ColorPink && c <= ColorWhite
}
