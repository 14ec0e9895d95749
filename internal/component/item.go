package component

import "ascii-rogue/internal/ecs"

// ItemKind classifies an item by its one nonzero magnitude.
type ItemKind uint8

const (
	KindNone ItemKind = iota
	KindConsumable
	KindWeapon
	KindArmor
)

func (k ItemKind) String() string {
	switch k {
	case KindConsumable:
		return "consumable"
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	}
	return "none"
}

// Item is a plain value struct. At most one of Damage, Defense and Healing
// is nonzero. It is stored by value inside Inventory and Equipment, never as
// a held ECS entity.
type Item struct {
	Name    string
	Glyph   rune
	Color   Color
	Damage  int
	Defense int
	Healing int
}

// Kind classifies the item, checking healing first, then damage, then
// defense.
func (i Item) Kind() ItemKind {
	switch {
	case i.Healing > 0:
		return KindConsumable
	case i.Damage > 0:
		return KindWeapon
	case i.Defense > 0:
		return KindArmor
	}
	return KindNone
}

// CItem is the ECS component type for floor-item entities.
// The wrapped Item is copied into Inventory on pickup; the entity is then destroyed.
const CItem ecs.ComponentType = 4

// FloorItem wraps Item so it can be stored as an ECS component on floor entities.
type FloorItem struct{ Item }

func (FloorItem) Type() ecs.ComponentType { return CItem }
