package game

import "errors"

// ErrGenerationExhausted is returned by New when the generator accepted too
// few rooms to hold both the player and the boss.
var ErrGenerationExhausted = errors.New("dungeon generation exhausted")
