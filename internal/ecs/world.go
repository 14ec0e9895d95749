package ecs

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// World is the central entity registry and component store.
//
// Query results come back in creation order so that a seeded session
// replays identically.
type World struct {
	nextID     EntityID
	alive      mapset.Set[EntityID]
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      mapset.New[EntityID](),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive.Put(id)
	return id
}

// DestroyEntity removes the entity and all its components.
// Destroying a dead or unknown entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive.Has(id) {
		return
	}
	w.alive.Remove(id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive.Has(id)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.alive.Size()
}

// Add attaches (or replaces) a component on a live entity.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive.Has(id) {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// sorted by ID.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range w.components[smallest] {
		if !w.alive.Has(id) {
			continue
		}
		if w.hasAll(id, types) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}
