package game

import (
	"math/rand"

	"ascii-rogue/assets"
	"ascii-rogue/internal/generate"
)

// Room sizes are fixed; only the grid and spawn rules are configurable.
const (
	minRoomSize = 5
	maxRoomSize = 10
)

// Config describes one session.
type Config struct {
	Width, Height     int
	MaxRooms          int // placement attempts
	MinRooms          int // fewer accepted rooms is ErrGenerationExhausted
	Difficulty        int
	MinMonsters       int
	MaxMonsters       int
	MinItems          int
	MaxItems          int
	InventoryCapacity int
	Seed              int64
}

// DefaultConfig returns the classic 80×24 layout.
func DefaultConfig() Config {
	return Config{
		Width:             80,
		Height:            24,
		MaxRooms:          15,
		MinRooms:          2,
		Difficulty:        1,
		MinMonsters:       1,
		MaxMonsters:       3,
		MinItems:          0,
		MaxItems:          2,
		InventoryCapacity: 10,
	}
}

// levelConfig builds the generator configuration for a session.
func levelConfig(cfg Config, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:     cfg.Width,
		MapHeight:    cfg.Height,
		MaxRooms:     cfg.MaxRooms,
		MinRoomSize:  minRoomSize,
		MaxRoomSize:  maxRoomSize,
		Difficulty:   cfg.Difficulty,
		MinMonsters:  cfg.MinMonsters,
		MaxMonsters:  cfg.MaxMonsters,
		MinItems:     cfg.MinItems,
		MaxItems:     cfg.MaxItems,
		MonsterTable: assets.MonsterTable(),
		Boss:         assets.BossTemplate,
		ItemKinds:    assets.ItemKinds(),
		Rand:         rng,
	}
}
