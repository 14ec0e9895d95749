package component

import "ascii-rogue/internal/ecs"

const CStats ecs.ComponentType = 3

// Stats is the stat block shared by the player and monsters.
// Level and XP are carried but never change.
type Stats struct {
	MaxHP   int
	HP      int
	Attack  int
	Defense int
	Level   int
	XP      int
}

func (Stats) Type() ecs.ComponentType { return CStats }

// NewStats returns a full-health stat block at level 1.
func NewStats(maxHP, attack, defense int) Stats {
	return Stats{MaxHP: maxHP, HP: maxHP, Attack: attack, Defense: defense, Level: 1}
}

// Dead reports whether hp has reached zero.
func (s Stats) Dead() bool { return s.HP <= 0 }

// Clamp pins HP into [0, MaxHP].
func (s Stats) Clamp() Stats {
	if s.HP < 0 {
		s.HP = 0
	}
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s
}
