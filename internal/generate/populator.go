package generate

import (
	"ascii-rogue/assets"
	"ascii-rogue/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// SpawnPoint holds a map coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Template assets.MonsterTemplate
	X, Y     int
}

// ItemSpawn describes one floor item to create.
type ItemSpawn struct {
	Kind assets.ItemKind
	X, Y int
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Player   SpawnPoint
	Boss     *MonsterSpawn
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// Populate plans the player start at the first room's center, the boss at
// the last room's center, and monsters and items in every room between.
// Every planned position is distinct. Maps with fewer than two rooms get an
// empty plan.
func Populate(gmap *gamemap.GameMap, cfg *Config) PopulateResult {
	var result PopulateResult

	rooms := gmap.Rooms
	if len(rooms) < 2 {
		return result
	}

	occupied := newOccupied()

	px, py := rooms[0].Center()
	result.Player = SpawnPoint{X: px, Y: py}
	occupied.Put(result.Player)

	bx, by := rooms[len(rooms)-1].Center()
	result.Boss = &MonsterSpawn{Template: cfg.Boss, X: bx, Y: by}
	occupied.Put(SpawnPoint{X: bx, Y: by})

	table := NewWeightTable(DifficultyWeights(len(cfg.MonsterTable), cfg.Difficulty))

	for _, room := range rooms[1 : len(rooms)-1] {
		n := randRange(cfg.Rand, cfg.MinMonsters, cfg.MaxMonsters)
		for range n {
			i := table.Pick(cfg.Rand)
			if i < 0 {
				break
			}
			p, ok := pickFreeInRoom(room, cfg, occupied)
			if !ok {
				break
			}
			occupied.Put(p)
			result.Monsters = append(result.Monsters, MonsterSpawn{Template: cfg.MonsterTable[i], X: p.X, Y: p.Y})
		}

		n = randRange(cfg.Rand, cfg.MinItems, cfg.MaxItems)
		for range n {
			if len(cfg.ItemKinds) == 0 {
				break
			}
			kind := cfg.ItemKinds[cfg.Rand.Intn(len(cfg.ItemKinds))]
			p, ok := pickFreeInRoom(room, cfg, occupied)
			if !ok {
				break
			}
			occupied.Put(p)
			result.Items = append(result.Items, ItemSpawn{Kind: kind, X: p.X, Y: p.Y})
		}
	}
	return result
}

// pickFreeInRoom tries up to 20 random positions inside room's inner area,
// then falls back to scanning it in row order. ok is false when every inner
// tile is taken.
func pickFreeInRoom(room gamemap.Room, cfg *Config, occupied mapset.Set[SpawnPoint]) (SpawnPoint, bool) {
	x1, y1, x2, y2 := room.Inner()
	const maxAttempts = 20
	for range maxAttempts {
		p := SpawnPoint{X: randRange(cfg.Rand, x1, x2), Y: randRange(cfg.Rand, y1, y2)}
		if !occupied.Has(p) {
			return p, true
		}
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if p := (SpawnPoint{X: x, Y: y}); !occupied.Has(p) {
				return p, true
			}
		}
	}
	return SpawnPoint{}, false
}

func newOccupied() mapset.Set[SpawnPoint] {
	return mapset.New[SpawnPoint]()
}
