package system

import (
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/ecs"
)

// Pickup moves a floor item into the holder's inventory and destroys the
// floor entity. It reports false, changing nothing, when the inventory is
// full or either entity is missing its component.
func Pickup(w *ecs.World, holderID, itemID ecs.EntityID) (component.Item, bool) {
	invComp := w.Get(holderID, component.CInventory)
	itemComp := w.Get(itemID, component.CItem)
	if invComp == nil || itemComp == nil {
		return component.Item{}, false
	}
	inv := invComp.(component.Inventory)
	item := itemComp.(component.FloorItem).Item
	if !inv.Add(item) {
		return item, false
	}
	w.Add(holderID, inv)
	w.DestroyEntity(itemID)
	return item, true
}

// UseResult describes what using an inventory item did.
type UseResult struct {
	Item     component.Item
	Kind     component.ItemKind
	Healed   int             // consumables only
	Replaced *component.Item // previously equipped piece returned to the backpack
}

// UseItem uses or equips the held item at index. Consumables heal and are
// removed. Weapons and armor are equipped; the item leaves the backpack
// before any previously equipped piece is put back, so the backpack never
// grows. It reports false with no mutation for an out-of-range index.
func UseItem(w *ecs.World, holderID ecs.EntityID, index int) (UseResult, bool) {
	invComp := w.Get(holderID, component.CInventory)
	if invComp == nil {
		return UseResult{}, false
	}
	inv := invComp.(component.Inventory)
	if index < 0 || index >= len(inv.Items) {
		return UseResult{}, false
	}
	item := inv.Items[index]
	res := UseResult{Item: item, Kind: item.Kind()}

	switch res.Kind {
	case component.KindConsumable:
		inv.RemoveAt(index)
		w.Add(holderID, inv)
		res.Healed = Heal(w, holderID, item.Healing)

	case component.KindWeapon, component.KindArmor:
		eq := equipment(w, holderID)
		inv.RemoveAt(index)
		equipped := item
		if res.Kind == component.KindWeapon {
			res.Replaced, eq.Weapon = eq.Weapon, &equipped
		} else {
			res.Replaced, eq.Armor = eq.Armor, &equipped
		}
		if res.Replaced != nil {
			inv.Add(*res.Replaced)
		}
		w.Add(holderID, inv)
		w.Add(holderID, eq)

	default:
		return res, false
	}
	return res, true
}
