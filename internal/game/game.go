package game

import (
	"fmt"
	"math/rand"

	"ascii-rogue/assets"
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/ecs"
	"ascii-rogue/internal/factory"
	"ascii-rogue/internal/gamemap"
	"ascii-rogue/internal/generate"
	"ascii-rogue/internal/system"
)

// State tracks the session state machine.
type State uint8

const (
	StatePlaying State = iota
	StateInventory
	StateVictory
	StateDefeat
	StateQuit
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Status is the terminal-state verdict of a session.
type Status uint8

const (
	Ongoing Status = iota
	Victory
	Defeat
)

func (s Status) String() string {
	switch s {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return "ongoing"
}

// Session owns the world state of one game: grid, entities, message log and
// run statistics. It is not safe for concurrent use; callers that render on
// another goroutine should read a Snapshot between turns.
type Session struct {
	world    *ecs.World
	gmap     *gamemap.GameMap
	seed     int64
	playerID ecs.EntityID
	bossID   ecs.EntityID
	state    State
	messages []Event
	runLog   RunLog
}

// New generates and populates a dungeon. It fails with a wrapped
// ErrGenerationExhausted when fewer than max(cfg.MinRooms, 2) rooms fit.
func New(cfg Config) (*Session, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	gcfg := levelConfig(cfg, rng)
	gmap := generate.Generate(gcfg)

	need := max(cfg.MinRooms, 2)
	if len(gmap.Rooms) < need {
		return nil, fmt.Errorf("%w: %d of %d rooms placed in %d attempts on %dx%d",
			ErrGenerationExhausted, len(gmap.Rooms), need, gcfg.MaxRooms, cfg.Width, cfg.Height)
	}

	world := ecs.NewWorld()
	player, boss := factory.Spawn(world, generate.Populate(gmap, gcfg), cfg.InventoryCapacity)

	s := &Session{
		world:    world,
		gmap:     gmap,
		seed:     cfg.Seed,
		playerID: player,
		bossID:   boss,
		state:    StatePlaying,
		runLog:   newRunLog(cfg.Seed, len(gmap.Rooms)),
	}
	s.emit(EventWelcome, assets.WelcomeMessage)
	return s, nil
}

// Apply interprets one action against the current state. While the
// inventory is open any non-selection action cancels it.
func (s *Session) Apply(a Action) []Event {
	switch s.state {
	case StateInventory:
		if idx, ok := selectIndex(a); ok {
			return s.SelectItem(idx)
		}
		return s.CancelInventory()
	case StatePlaying:
	default:
		return nil
	}

	switch a {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		return s.Move(actionToDelta(a))
	case ActionInventory:
		return s.OpenInventory()
	case ActionQuit:
		s.Quit()
	case ActionCheat:
		return s.VanquishBoss()
	}
	return nil
}

// Move resolves one step of the player by (dx, dy), which must be a unit
// orthogonal delta. Exactly one of wall, combat, pickup or free move is
// taken. It returns the events emitted by this turn.
func (s *Session) Move(dx, dy int) []Event {
	if s.state != StatePlaying || abs(dx)+abs(dy) != 1 {
		return nil
	}
	s.runLog.TurnsPlayed++

	result, target := system.TryMove(s.world, s.gmap, s.playerID, dx, dy)
	switch result {
	case system.MoveAttack:
		return s.fight(target)
	case system.MovePickup:
		return s.pickup(target)
	}
	// MoveOK and MoveBlocked are silent.
	return nil
}

// fight resolves the player's attack on a monster and its counter-attack.
func (s *Session) fight(target ecs.EntityID) []Event {
	// Capture the name before the entity can be destroyed.
	name := s.nameOf(target)
	var evs []Event

	hit := system.Attack(s.world, s.playerID, target)
	s.runLog.DamageDealt += hit.Damage
	evs = append(evs, s.emit(EventPlayerHit, fmt.Sprintf("You hit the %s for %d damage!", name, hit.Damage)))

	if hit.Killed {
		evs = append(evs, s.emit(EventMonsterKilled, fmt.Sprintf("You killed the %s!", name)))
		s.runLog.EnemiesKilled[name]++
		s.world.DestroyEntity(target)
		if target == s.bossID {
			s.bossID = ecs.NilEntity
			s.state = StateVictory
		}
		return evs
	}

	counter := system.Attack(s.world, target, s.playerID)
	s.runLog.DamageTaken += counter.Damage
	s.runLog.CauseOfDeath = name
	evs = append(evs, s.emit(EventMonsterHit, fmt.Sprintf("The %s hits you for %d damage!", name, counter.Damage)))
	if counter.Killed {
		s.state = StateDefeat
	}
	return evs
}

func (s *Session) pickup(target ecs.EntityID) []Event {
	item, ok := system.Pickup(s.world, s.playerID, target)
	if !ok {
		return []Event{s.emit(EventInventoryFull, "Your inventory is full!")}
	}
	return []Event{s.emit(EventPickup, fmt.Sprintf("You picked up %s!", item.Name))}
}

// Quit ends the session without a verdict.
func (s *Session) Quit() {
	if s.Running() {
		s.state = StateQuit
	}
}

// VanquishBoss removes the boss outright and ends the session in victory.
// It does nothing once the boss is gone.
func (s *Session) VanquishBoss() []Event {
	if s.state != StatePlaying || !s.world.Alive(s.bossID) {
		return nil
	}
	ev := s.emit(EventCheat, fmt.Sprintf("CHEAT ACTIVATED: %s vanquished!", s.nameOf(s.bossID)))
	s.world.DestroyEntity(s.bossID)
	s.bossID = ecs.NilEntity
	s.state = StateVictory
	return []Event{ev}
}

// Status reports Victory once the boss is dead, Defeat once the player is,
// and Ongoing otherwise, including after a quit.
func (s *Session) Status() Status {
	switch s.state {
	case StateVictory:
		return Victory
	case StateDefeat:
		return Defeat
	}
	return Ongoing
}

// State returns the current state machine state.
func (s *Session) State() State { return s.state }

// Running reports whether the session still accepts turns.
func (s *Session) Running() bool {
	return s.state == StatePlaying || s.state == StateInventory
}

// Seed returns the seed the dungeon was generated from.
func (s *Session) Seed() int64 { return s.seed }

// RunLog returns a copy of the run statistics.
func (s *Session) RunLog() RunLog { return s.runLog.clone() }

// Messages returns a copy of the full message log, oldest first.
func (s *Session) Messages() []Event {
	return append([]Event(nil), s.messages...)
}

func (s *Session) emit(kind EventKind, text string) Event {
	ev := Event{Kind: kind, Text: text}
	s.messages = append(s.messages, ev)
	return ev
}

func (s *Session) nameOf(id ecs.EntityID) string {
	rend := s.world.Get(id, component.CRenderable)
	if rend == nil {
		return "creature"
	}
	return rend.(component.Renderable).Name
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
