package assets

import "ascii-rogue/internal/component"

// ItemKind enumerates the floor item templates.
type ItemKind uint8

const (
	ItemHealthPotion ItemKind = iota
	ItemSword
	ItemShield
	ItemSteelSword
	ItemSteelShield
)

var itemTemplates = []component.Item{
	ItemHealthPotion: {Name: "Health Potion", Glyph: '!', Color: component.ColorRed, Healing: 20},
	ItemSword:        {Name: "Sword", Glyph: '/', Color: component.ColorCyan, Damage: 5},
	ItemShield:       {Name: "Shield", Glyph: ']', Color: component.ColorBlue, Defense: 3},
	ItemSteelSword:   {Name: "Steel Sword", Glyph: '/', Color: component.ColorWhite, Damage: 8},
	ItemSteelShield:  {Name: "Steel Shield", Glyph: ']', Color: component.ColorWhite, Defense: 5},
}

// ItemKinds lists every item template kind, for uniform selection.
func ItemKinds() []ItemKind {
	kinds := make([]ItemKind, len(itemTemplates))
	for i := range kinds {
		kinds[i] = ItemKind(i)
	}
	return kinds
}

// NewItem instantiates the template for kind.
func NewItem(kind ItemKind) component.Item {
	return itemTemplates[kind]
}
