// Package engine implements the color tube sorting puzzle: tubes of color
// segments, level generation, the pour selection state machine and completion
// scoring. It is UI-agnostic and deterministic for a given seed.
package engine

import "strings"

// Color identifies a liquid color by its position in the palette.
// Lower values win ties wherever colors are compared by amount.
type Color uint8

const (
	ColorPink Color = iota
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
	ColorCount // Sentinel value for iteration
)

var colorNames = [ColorCount]string{
	"pink", "purple", "violet", "blue", "teal", "green",
	"olive", "yellow", "orange", "red", "gray", "white",
}

var colorCodes = [ColorCount]rune{
	'K', 'P', 'V', 'B', 'T', 'G', 'O', 'Y', 'N', 'R', 'A', 'W',
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c >= ColorCount {
		return "unknown"
	}
	return colorNames[c]
}

// Char returns a one-rune code for compact ASCII dumps.
func (c Color) Char() rune {
	if c >= ColorCount {
		return '?'
	}
	return colorCodes[c]
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a color name or one-rune code to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i), true
		}
	}
	if r := []rune(strings.ToUpper(s)); len(r) == 1 {
		for i, code := range colorCodes {
			if r[0] == code {
				return Color(i), true
			}
		}
	}
	return 0, false
}

// Palette returns the first n palette colors in order.
// n is clamped to [0, ColorCount].
func Palette(n int) []Color {
	if n < 0 {
		n = 0
	}
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// FullPalette returns all twelve palette colors.
func FullPalette() []Color {
	return Palette(int(ColorCount))
}
