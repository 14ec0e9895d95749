package generate

import (
	"math/rand"

	"ascii-rogue/assets"
)

// Config drives procedural generation and population of one dungeon.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts, not a target count
	MinRoomSize         int
	MaxRoomSize         int

	Difficulty   int
	MinMonsters  int // per interior room
	MaxMonsters  int
	MinItems     int // per interior room
	MaxItems     int
	MonsterTable []assets.MonsterTemplate // weakest first
	Boss         assets.MonsterTemplate
	ItemKinds    []assets.ItemKind

	Rand *rand.Rand
}

// DefaultConfig returns the classic 80×24, 15-attempt layout with the
// standard spawn rules.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:     80,
		MapHeight:    24,
		MaxRooms:     15,
		MinRoomSize:  5,
		MaxRoomSize:  10,
		Difficulty:   1,
		MinMonsters:  1,
		MaxMonsters:  3,
		MinItems:     0,
		MaxItems:     2,
		MonsterTable: assets.MonsterTable(),
		Boss:         assets.BossTemplate,
		ItemKinds:    assets.ItemKinds(),
		Rand:         rng,
	}
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
