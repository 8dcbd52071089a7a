package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/domain"
)

// glyphHeight is the number of rows of every glyph.
const glyphHeight = 5

// minBigWidth is the narrowest terminal that gets block digits.
const minBigWidth = 30

// glyphs maps each digit and the colon to a 5-row block drawing.
// Digits are 3 columns wide, the colon is 1.
var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"▀█ ", " █ ", " █ ", " █ ", "▄█▄"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// renderBigClock draws c as block digits in style. Terminals narrower than
// minBigWidth get the plain mm:ss string instead.
func renderBigClock(c domain.Clock, style lipgloss.Style, width int) string {
	text := c.String()
	if width < minBigWidth {
		return style.Render(text)
	}

	var rows [glyphHeight]strings.Builder
	for i, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(glyph[row])
		}
	}

	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
