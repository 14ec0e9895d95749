package component

import "testing"

func TestItemKind(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want ItemKind
	}{
		{"potion", Item{Name: "Health Potion", Healing: 20}, KindConsumable},
		{"sword", Item{Name: "Sword", Damage: 5}, KindWeapon},
		{"shield", Item{Name: "Shield", Defense: 3}, KindArmor},
		{"junk", Item{Name: "Pebble"}, KindNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Kind(); got != tc.want {
				t.Errorf("Kind() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestStatsClamp(t *testing.T) {
	s := Stats{MaxHP: 10, HP: -4}.Clamp()
	if s.HP != 0 {
		t.Errorf("HP = %d; want 0", s.HP)
	}
	s = Stats{MaxHP: 10, HP: 14}.Clamp()
	if s.HP != 10 {
		t.Errorf("HP = %d; want 10", s.HP)
	}
	if !(Stats{HP: 0}).Dead() {
		t.Error("0 HP should be dead")
	}
}

func TestInventoryAddRespectsCapacity(t *testing.T) {
	inv := Inventory{Capacity: 2}
	if !inv.Add(Item{Name: "a"}) || !inv.Add(Item{Name: "a"}) {
		t.Fatal("first two adds should succeed, duplicates included")
	}
	if inv.Add(Item{Name: "b"}) {
		t.Error("add past capacity should fail")
	}
	if len(inv.Items) != 2 {
		t.Errorf("len = %d; want 2", len(inv.Items))
	}
}

func TestInventoryRemoveAtPreservesOrder(t *testing.T) {
	inv := Inventory{Capacity: 5}
	for _, n := range []string{"a", "b", "c"} {
		inv.Add(Item{Name: n})
	}
	got := inv.RemoveAt(1)
	if got.Name != "b" {
		t.Errorf("removed %q; want b", got.Name)
	}
	if len(inv.Items) != 2 || inv.Items[0].Name != "a" || inv.Items[1].Name != "c" {
		t.Errorf("items = %+v; want [a c]", inv.Items)
	}
}

func TestEquipmentBonuses(t *testing.T) {
	var e Equipment
	if e.AttackBonus() != 0 || e.DefenseBonus() != 0 {
		t.Error("empty equipment should give no bonus")
	}
	e.Weapon = &Item{Damage: 8}
	e.Armor = &Item{Defense: 5}
	if e.AttackBonus() != 8 || e.DefenseBonus() != 5 {
		t.Errorf("bonuses = %d/%d; want 8/5", e.AttackBonus(), e.DefenseBonus())
	}
}
