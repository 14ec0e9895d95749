package component

import "ascii-rogue/internal/ecs"

const CRenderable ecs.ComponentType = 2

// Color is a named color tag. The renderer maps tags to terminal colors.
type Color string

const (
	ColorDefault Color = ""
	ColorBrown   Color = "brown"
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorMagenta Color = "magenta"
	ColorYellow  Color = "yellow"
	ColorCyan    Color = "cyan"
	ColorBlue    Color = "blue"
	ColorWhite   Color = "white"
)

// Renderable holds the glyph and color an entity is drawn with, plus its
// display name.
type Renderable struct {
	Glyph rune
	Color Color
	Name  string
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
