package assets

import "ascii-rogue/internal/component"

// MonsterKind enumerates the ordinary monster templates, weakest first.
// The order drives difficulty weighting.
type MonsterKind uint8

const (
	MonsterRat MonsterKind = iota
	MonsterOrc
	MonsterTroll
	MonsterDragon
)

// MonsterTemplate is the fixed definition a monster is built from.
type MonsterTemplate struct {
	Kind  MonsterKind
	Name  string
	Glyph rune
	Color component.Color
	Stats component.Stats
}

var monsterTemplates = []MonsterTemplate{
	{Kind: MonsterRat, Name: "Rat", Glyph: 'r', Color: component.ColorBrown, Stats: component.NewStats(5, 2, 0)},
	{Kind: MonsterOrc, Name: "Orc", Glyph: 'o', Color: component.ColorGreen, Stats: component.NewStats(10, 4, 1)},
	{Kind: MonsterTroll, Name: "Troll", Glyph: 'T', Color: component.ColorRed, Stats: component.NewStats(15, 6, 2)},
	{Kind: MonsterDragon, Name: "Dragon", Glyph: 'D', Color: component.ColorRed, Stats: component.NewStats(30, 10, 4)},
}

// MonsterTable returns the ordinary monster templates ordered weakest to
// strongest. The slice is a copy.
func MonsterTable() []MonsterTemplate {
	out := make([]MonsterTemplate, len(monsterTemplates))
	copy(out, monsterTemplates)
	return out
}

// Monster returns the template for kind.
func Monster(kind MonsterKind) MonsterTemplate {
	return monsterTemplates[kind]
}

// BossTemplate is the Ancient Dragon. Killing it wins the game.
var BossTemplate = MonsterTemplate{
	Name:  "Ancient Dragon",
	Glyph: 'Đ',
	Color: component.ColorMagenta,
	Stats: component.NewStats(50, 15, 8),
}

// PlayerTemplate is the starting player stat block.
var PlayerTemplate = MonsterTemplate{
	Name:  "Player",
	Glyph: '@',
	Color: component.ColorYellow,
	Stats: component.NewStats(30, 5, 2),
}
