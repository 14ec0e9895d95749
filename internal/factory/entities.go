package factory

import (
	"math/rand"

	"ascii-rogue/assets"
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/ecs"
	"ascii-rogue/internal/generate"
)

// NewPlayer creates the player entity at (x, y) with an empty backpack of
// the given capacity.
func NewPlayer(w *ecs.World, x, y, capacity int) ecs.EntityID {
	if capacity <= 0 {
		capacity = component.DefaultCapacity
	}
	tmpl := assets.PlayerTemplate
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: tmpl.Glyph, Color: tmpl.Color, Name: tmpl.Name})
	w.Add(id, tmpl.Stats)
	w.Add(id, component.Inventory{Capacity: capacity})
	w.Add(id, component.Equipment{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewMonster creates a monster entity from a template.
func NewMonster(w *ecs.World, tmpl assets.MonsterTemplate, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: tmpl.Glyph, Color: tmpl.Color, Name: tmpl.Name})
	w.Add(id, tmpl.Stats)
	w.Add(id, component.TagMonster{})
	return id
}

// NewBoss creates the boss monster.
func NewBoss(w *ecs.World, tmpl assets.MonsterTemplate, x, y int) ecs.EntityID {
	id := NewMonster(w, tmpl, x, y)
	w.Add(id, component.TagBoss{})
	return id
}

// NewRandomMonster creates a monster whose template is drawn from table
// (weakest first) with the difficulty fall-off. It returns NilEntity for an
// empty table.
func NewRandomMonster(w *ecs.World, rng *rand.Rand, table []assets.MonsterTemplate, difficulty, x, y int) ecs.EntityID {
	i := generate.NewWeightTable(generate.DifficultyWeights(len(table), difficulty)).Pick(rng)
	if i < 0 {
		return ecs.NilEntity
	}
	return NewMonster(w, table[i], x, y)
}

// NewItem creates a floor-item entity.
func NewItem(w *ecs.World, item component.Item, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: item.Glyph, Color: item.Color, Name: item.Name})
	w.Add(id, component.FloorItem{Item: item})
	return id
}

// NewRandomItem creates a floor item from a uniformly chosen template kind.
func NewRandomItem(w *ecs.World, rng *rand.Rand, kinds []assets.ItemKind, x, y int) ecs.EntityID {
	if len(kinds) == 0 {
		return ecs.NilEntity
	}
	return NewItem(w, assets.NewItem(kinds[rng.Intn(len(kinds))]), x, y)
}

// Spawn creates every entity in a population plan and returns the player
// and boss IDs.
func Spawn(w *ecs.World, pop generate.PopulateResult, capacity int) (player, boss ecs.EntityID) {
	player = NewPlayer(w, pop.Player.X, pop.Player.Y, capacity)
	if pop.Boss != nil {
		boss = NewBoss(w, pop.Boss.Template, pop.Boss.X, pop.Boss.Y)
	}
	for _, ms := range pop.Monsters {
		NewMonster(w, ms.Template, ms.X, ms.Y)
	}
	for _, is := range pop.Items {
		NewItem(w, assets.NewItem(is.Kind), is.X, is.Y)
	}
	return player, boss
}
