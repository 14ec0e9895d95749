package component

import "ascii-rogue/internal/ecs"

const CInventory ecs.ComponentType = 5

// DefaultCapacity is the backpack size of a fresh player.
const DefaultCapacity = 10

// Inventory is an ordered, bounded list of held items. Duplicates by name
// are allowed.
type Inventory struct {
	Items    []Item
	Capacity int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Full reports whether no more items fit.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

// Add appends item when there is room and reports whether it did.
func (inv *Inventory) Add(item Item) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveAt deletes and returns the item at index i, preserving order.
func (inv *Inventory) RemoveAt(i int) Item {
	item := inv.Items[i]
	inv.Items = append(inv.Items[:i:i], inv.Items[i+1:]...)
	return item
}

const CEquipment ecs.ComponentType = 6

// Equipment holds the equipped weapon and armor. Equipped pieces live here,
// outside the inventory, until swapped out.
type Equipment struct {
	Weapon *Item
	Armor  *Item
}

func (Equipment) Type() ecs.ComponentType { return CEquipment }

// AttackBonus returns the equipped weapon's damage, or 0.
func (e Equipment) AttackBonus() int {
	if e.Weapon == nil {
		return 0
	}
	return e.Weapon.Damage
}

// DefenseBonus returns the equipped armor's defense, or 0.
func (e Equipment) DefenseBonus() int {
	if e.Armor == nil {
		return 0
	}
	return e.Armor.Defense
}
