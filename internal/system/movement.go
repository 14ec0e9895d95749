package system

import (
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/ecs"
	"ascii-rogue/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a monster
	MovePickup                    // bumped a floor item
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	case MovePickup:
		return "pickup"
	}
	return "unknown"
}

// TryMove classifies a step of entity id by (dx, dy): wall, then monster,
// then floor item, then free tile. Only a free tile moves the entity.
// For MoveAttack and MovePickup the bumped entity is returned.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	if other := EntityAt(w, nx, ny, id, component.CTagMonster); other != ecs.NilEntity {
		return MoveAttack, other
	}
	if item := EntityAt(w, nx, ny, id, component.CItem); item != ecs.NilEntity {
		return MovePickup, item
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// EntityAt returns the first live entity carrying t positioned at (x, y),
// ignoring skip. It returns NilEntity when there is none.
func EntityAt(w *ecs.World, x, y int, skip ecs.EntityID, t ecs.ComponentType) ecs.EntityID {
	for _, id := range w.Query(t, component.CPosition) {
		if id == skip {
			continue
		}
		p := w.Get(id, component.CPosition).(component.Position)
		if p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}
