package tubes

import "unicode"

// shortcutRows binds keys to tube grid positions, one keyboard row per grid row.
var shortcutRows = [...]string{
	"1234567",
	"QWERTYU",
	"ASDFGHJ",
	"ZXCVBNM",
}

// Shortcut returns the key bound to a grid position.
// Positions outside the table have no shortcut.
func Shortcut(row, col int) (rune, bool) {
	if row < 0 || row >= len(shortcutRows) || col < 0 {
		return 0, false
	}
	keys := []rune(shortcutRows[row])
	if col >= len(keys) {
		return 0, false
	}
	return keys[col], true
}

// ShortcutIndex maps a key to the tube index it addresses in a grid with
// the given column count. Matching is case-insensitive.
func ShortcutIndex(r rune, cols int) (int, bool) {
	if cols <= 0 {
		return 0, false
	}
	r = unicode.ToUpper(r)
	for row, keys := range shortcutRows {
		col := 0
		for _, k := range keys {
			if k == r {
				if col >= cols {
					return 0, false
				}
				return row*cols + col, true
			}
			col++
		}
	}
	return 0, false
}

// IsShortcut reports whether r appears anywhere in the shortcut table.
func IsShortcut(r rune) bool {
	_, ok := ShortcutIndex(r, len(shortcutRows[0]))
	return ok
}
