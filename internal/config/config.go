// Package config loads session settings from defaults, an optional YAML
// file and ROGUE_* environment variables, in that order of precedence.
package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"ascii-rogue/internal/game"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ROGUE_"

// minGrid is the smallest side that fits two 5×5 rooms with their borders.
const minGrid = 12

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Range is an inclusive [Min, Max] spawn count.
type Range struct {
	Min int `yaml:"min" env:"MIN"`
	Max int `yaml:"max" env:"MAX"`
}

// Config holds all game settings.
type Config struct {
	Width             int   `yaml:"width" env:"WIDTH"`
	Height            int   `yaml:"height" env:"HEIGHT"`
	MaxRooms          int   `yaml:"max_rooms" env:"MAX_ROOMS"` // placement attempts
	MinRooms          int   `yaml:"min_rooms" env:"MIN_ROOMS"`
	Seed              int64 `yaml:"seed" env:"SEED"` // 0 picks a random seed
	Difficulty        int   `yaml:"difficulty" env:"DIFFICULTY"`
	InventoryCapacity int   `yaml:"inventory_capacity" env:"INVENTORY_CAPACITY"`

	MonstersPerRoom Range `yaml:"monsters_per_room" envPrefix:"MONSTERS_PER_ROOM_"`
	ItemsPerRoom    Range `yaml:"items_per_room" envPrefix:"ITEMS_PER_ROOM_"`
}

// Default returns the classic settings.
func Default() Config {
	d := game.DefaultConfig()
	return Config{
		Width:             d.Width,
		Height:            d.Height,
		MaxRooms:          d.MaxRooms,
		MinRooms:          d.MinRooms,
		Difficulty:        d.Difficulty,
		InventoryCapacity: d.InventoryCapacity,
		MonstersPerRoom:   Range{Min: d.MinMonsters, Max: d.MaxMonsters},
		ItemsPerRoom:      Range{Min: d.MinItems, Max: d.MaxItems},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in a YAML file onto cfg. Unknown keys
// are an error.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ParseEnv overlays ROGUE_* variables onto cfg. Unset variables leave the
// current value alone.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot produce a playable session.
func (c Config) Validate() error {
	switch {
	case c.Width < minGrid || c.Height < minGrid:
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalid, c.Width, c.Height, minGrid, minGrid)
	case c.MaxRooms <= 0:
		return fmt.Errorf("%w: max_rooms must be positive, got %d", ErrInvalid, c.MaxRooms)
	case c.MinRooms < 2:
		return fmt.Errorf("%w: min_rooms must be at least 2, got %d", ErrInvalid, c.MinRooms)
	case c.MinRooms > c.MaxRooms:
		return fmt.Errorf("%w: min_rooms %d exceeds max_rooms %d", ErrInvalid, c.MinRooms, c.MaxRooms)
	case c.Difficulty < 0:
		return fmt.Errorf("%w: difficulty must not be negative, got %d", ErrInvalid, c.Difficulty)
	case c.InventoryCapacity <= 0:
		return fmt.Errorf("%w: inventory_capacity must be positive, got %d", ErrInvalid, c.InventoryCapacity)
	}
	if err := c.MonstersPerRoom.validate("monsters_per_room"); err != nil {
		return err
	}
	return c.ItemsPerRoom.validate("items_per_room")
}

func (r Range) validate(name string) error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: %s [%d,%d] is not a range", ErrInvalid, name, r.Min, r.Max)
	}
	return nil
}

// Game converts the settings into a session configuration.
func (c Config) Game() game.Config {
	return game.Config{
		Width:             c.Width,
		Height:            c.Height,
		MaxRooms:          c.MaxRooms,
		MinRooms:          c.MinRooms,
		Difficulty:        c.Difficulty,
		MinMonsters:       c.MonstersPerRoom.Min,
		MaxMonsters:       c.MonstersPerRoom.Max,
		MinItems:          c.ItemsPerRoom.Min,
		MaxItems:          c.ItemsPerRoom.Max,
		InventoryCapacity: c.InventoryCapacity,
		Seed:              c.Seed,
	}
}

// ResolveSeed replaces a zero seed with a random one.
func (c *Config) ResolveSeed() error {
	if c.Seed != 0 {
		return nil
	}
	seed, err := NewSeed()
	if err != nil {
		return err
	}
	c.Seed = seed
	return nil
}

// NewSeed returns a random non-zero seed.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		// Clear the sign bit so seeds print as positive numbers.
		if seed := int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63)); seed != 0 {
			return seed, nil
		}
	}
}
