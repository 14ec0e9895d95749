package component

import "ascii-rogue/internal/ecs"

const (
	CTagPlayer  ecs.ComponentType = 7
	CTagMonster ecs.ComponentType = 8
	CTagBoss    ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks a hostile entity that occupies its tile.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }

// TagBoss marks the monster whose death wins the game.
type TagBoss struct{}

func (TagBoss) Type() ecs.ComponentType { return CTagBoss }
