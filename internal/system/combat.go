package system

import (
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/ecs"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// Damage is the combat formula: attack minus mitigation, at least 1.
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}

// AttackTotal returns base attack plus the equipped weapon's damage.
func AttackTotal(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CStats)
	if c == nil {
		return 0
	}
	return c.(component.Stats).Attack + equipment(w, id).AttackBonus()
}

// DefenseTotal returns base defense plus the equipped armor's defense.
func DefenseTotal(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CStats)
	if c == nil {
		return 0
	}
	return c.(component.Stats).Defense + equipment(w, id).DefenseBonus()
}

func equipment(w *ecs.World, id ecs.EntityID) component.Equipment {
	if c := w.Get(id, component.CEquipment); c != nil {
		return c.(component.Equipment)
	}
	return component.Equipment{}
}

// Attack resolves one deterministic hit from attacker against defender.
// The defender's HP is clamped at 0 and Killed reports death; the defender
// entity is left in place for the caller to remove.
func Attack(w *ecs.World, attackerID, defenderID ecs.EntityID) AttackResult {
	if !w.Has(attackerID, component.CStats) {
		return AttackResult{}
	}
	hpComp := w.Get(defenderID, component.CStats)
	if hpComp == nil {
		return AttackResult{}
	}
	st := hpComp.(component.Stats)

	dmg := Damage(AttackTotal(w, attackerID), DefenseTotal(w, defenderID))
	st.HP -= dmg
	st = st.Clamp()
	w.Add(defenderID, st)

	return AttackResult{Damage: dmg, Killed: st.Dead()}
}

// Heal restores up to amount HP without passing MaxHP and returns the amount
// actually restored.
func Heal(w *ecs.World, id ecs.EntityID, amount int) int {
	c := w.Get(id, component.CStats)
	if c == nil || amount <= 0 {
		return 0
	}
	st := c.(component.Stats)
	restored := max(0, min(amount, st.MaxHP-st.HP))
	st.HP += restored
	w.Add(id, st)
	return restored
}
