package game

import (
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/gamemap"
	"ascii-rogue/internal/system"
)

// PlayerView is a read-only copy of the player's state.
type PlayerView struct {
	X, Y   int
	Glyph  rune
	Color  component.Color
	Stats  component.Stats
	Attack int // including weapon
	Armor  int // defense including armor
}

// MonsterView is a read-only copy of one live monster.
type MonsterView struct {
	Name   string
	Glyph  rune
	Color  component.Color
	X, Y   int
	HP     int
	MaxHP  int
	IsBoss bool
}

// ItemView is a floor item and its position.
type ItemView struct {
	Item component.Item
	X, Y int
}

// Snapshot is everything a renderer needs, copied between turns.
type Snapshot struct {
	Map       *gamemap.GameMap
	Player    PlayerView
	Monsters  []MonsterView
	Items     []ItemView
	Inventory component.Inventory
	Equipment component.Equipment
	Messages  []Event
	State     State
}

// Snapshot copies the current state. The map is shared; it never changes
// after generation.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Map:       s.gmap,
		Player:    s.Player(),
		Monsters:  s.Monsters(),
		Items:     s.Items(),
		Inventory: s.Inventory(),
		Equipment: s.Equipment(),
		Messages:  s.Messages(),
		State:     s.state,
	}
}

// Map returns the dungeon grid.
func (s *Session) Map() *gamemap.GameMap { return s.gmap }

// Player returns a copy of the player's state.
func (s *Session) Player() PlayerView {
	w := s.world
	pos := w.Get(s.playerID, component.CPosition).(component.Position)
	rend := w.Get(s.playerID, component.CRenderable).(component.Renderable)
	return PlayerView{
		X:      pos.X,
		Y:      pos.Y,
		Glyph:  rend.Glyph,
		Color:  rend.Color,
		Stats:  w.Get(s.playerID, component.CStats).(component.Stats),
		Attack: system.AttackTotal(w, s.playerID),
		Armor:  system.DefenseTotal(w, s.playerID),
	}
}

// Monsters lists live monsters in spawn order.
func (s *Session) Monsters() []MonsterView {
	w := s.world
	ids := w.Query(component.CTagMonster, component.CPosition, component.CStats, component.CRenderable)
	out := make([]MonsterView, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		st := w.Get(id, component.CStats).(component.Stats)
		out = append(out, MonsterView{
			Name:   rend.Name,
			Glyph:  rend.Glyph,
			Color:  rend.Color,
			X:      pos.X,
			Y:      pos.Y,
			HP:     st.HP,
			MaxHP:  st.MaxHP,
			IsBoss: w.Has(id, component.CTagBoss),
		})
	}
	return out
}

// Items lists floor items in spawn order.
func (s *Session) Items() []ItemView {
	w := s.world
	ids := w.Query(component.CItem, component.CPosition)
	out := make([]ItemView, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		out = append(out, ItemView{
			Item: w.Get(id, component.CItem).(component.FloorItem).Item,
			X:    pos.X,
			Y:    pos.Y,
		})
	}
	return out
}

// Inventory returns a copy of the player's backpack.
func (s *Session) Inventory() component.Inventory {
	inv := s.inventory()
	inv.Items = append([]component.Item(nil), inv.Items...)
	return inv
}

// Equipment returns a copy of the player's equipped pieces.
func (s *Session) Equipment() component.Equipment {
	c := s.world.Get(s.playerID, component.CEquipment)
	if c == nil {
		return component.Equipment{}
	}
	eq := c.(component.Equipment)
	if eq.Weapon != nil {
		w := *eq.Weapon
		eq.Weapon = &w
	}
	if eq.Armor != nil {
		a := *eq.Armor
		eq.Armor = &a
	}
	return eq
}
