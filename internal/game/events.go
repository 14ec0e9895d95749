package game

// EventKind classifies a narrative event.
type EventKind uint8

const (
	EventWelcome EventKind = iota
	EventPlayerHit
	EventMonsterKilled
	EventMonsterHit
	EventPickup
	EventInventoryFull
	EventInventoryEmpty
	EventHealed
	EventEquipped
	EventCancelled
	EventCheat
)

func (k EventKind) String() string {
	switch k {
	case EventWelcome:
		return "welcome"
	case EventPlayerHit:
		return "player-hit"
	case EventMonsterKilled:
		return "monster-killed"
	case EventMonsterHit:
		return "monster-hit"
	case EventPickup:
		return "pickup"
	case EventInventoryFull:
		return "inventory-full"
	case EventInventoryEmpty:
		return "inventory-empty"
	case EventHealed:
		return "healed"
	case EventEquipped:
		return "equipped"
	case EventCancelled:
		return "cancelled"
	case EventCheat:
		return "cheat"
	}
	return "unknown"
}

// Event is one line of the message log.
type Event struct {
	Kind EventKind
	Text string
}

func (e Event) String() string { return e.Text }
