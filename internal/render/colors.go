package render

import (
	"ascii-rogue/internal/component"

	"github.com/gdamore/tcell/v2"
)

var colorTags = map[component.Color]tcell.Color{
	component.ColorBrown:   tcell.ColorSaddleBrown,
	component.ColorGreen:   tcell.ColorGreen,
	component.ColorRed:     tcell.ColorRed,
	component.ColorMagenta: tcell.ColorFuchsia,
	component.ColorYellow:  tcell.ColorYellow,
	component.ColorCyan:    tcell.ColorAqua,
	component.ColorBlue:    tcell.ColorBlue,
	component.ColorWhite:   tcell.ColorWhite,
}

// TermColor maps a color tag to a terminal color. Unknown tags draw in the
// terminal's default color.
func TermColor(c component.Color) tcell.Color {
	if tc, ok := colorTags[c]; ok {
		return tc
	}
	return tcell.ColorDefault
}

// StyleFor returns the foreground style for a color tag.
func StyleFor(c component.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TermColor(c))
}
