// Package draw renders logical shapes onto a terminal using half-block characters.
package draw

import (
	"io"

	"github.com/tomz197/shieldroids/internal/physics"
)

// Point is a position in logical coordinates.
type Point = physics.Vec2

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

const (
	escClear      = "\033[H\033[2J"
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, escClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, escHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, escShowCursor)
}

// Bar returns a gauge of width cells filled to fraction, e.g. "████░░░░".
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = max(0, min(1, fraction))
	filled := int(fraction*float64(width) + 0.5)

	runes := make([]rune, width)
	for i := range runes {
		if i < filled {
			runes[i] = BlockFull
		} else {
			runes[i] = BlockLight
		}
	}
	return string(runes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
