package game

import (
	"fmt"

	"ascii-rogue/internal/component"
	"ascii-rogue/internal/system"
)

// OpenInventory enters the selection state. With an empty backpack it only
// emits a message and stays in play.
func (s *Session) OpenInventory() []Event {
	if s.state != StatePlaying {
		return nil
	}
	if len(s.inventory().Items) == 0 {
		return []Event{s.emit(EventInventoryEmpty, "Inventory is empty!")}
	}
	s.state = StateInventory
	return nil
}

// SelectItem uses or equips the held item at the zero-based index and
// closes the inventory. An out-of-range index cancels with no mutation.
func (s *Session) SelectItem(index int) []Event {
	if s.state != StateInventory {
		return nil
	}
	s.state = StatePlaying

	res, ok := system.UseItem(s.world, s.playerID, index)
	if !ok {
		return []Event{s.emit(EventCancelled, "Never mind.")}
	}
	s.runLog.ItemsUsed[res.Item.Name]++

	if res.Kind == component.KindConsumable {
		return []Event{s.emit(EventHealed, fmt.Sprintf("You healed for %d HP!", res.Healed))}
	}
	return []Event{s.emit(EventEquipped, fmt.Sprintf("Equipped %s!", res.Item.Name))}
}

// CancelInventory closes the inventory without using anything.
func (s *Session) CancelInventory() []Event {
	if s.state != StateInventory {
		return nil
	}
	s.state = StatePlaying
	return nil
}

func (s *Session) inventory() component.Inventory {
	if c := s.world.Get(s.playerID, component.CInventory); c != nil {
		return c.(component.Inventory)
	}
	return component.Inventory{}
}
