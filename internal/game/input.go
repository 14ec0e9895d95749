package game

// Action is one player request, decoupled from any key source.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionInventory
	ActionSelect1 // ActionSelect1 through ActionSelect9 pick inventory slots
	ActionSelect2
	ActionSelect3
	ActionSelect4
	ActionSelect5
	ActionSelect6
	ActionSelect7
	ActionSelect8
	ActionSelect9
	ActionCancel
	ActionQuit
	ActionCheat
)

// SelectAction returns the selection action for a 1-based slot number, or
// ActionNone outside 1..9.
func SelectAction(slot int) Action {
	if slot < 1 || slot > 9 {
		return ActionNone
	}
	return ActionSelect1 + Action(slot-1)
}

// selectIndex returns the zero-based inventory index of a selection action.
func selectIndex(a Action) (int, bool) {
	if a < ActionSelect1 || a > ActionSelect9 {
		return 0, false
	}
	return int(a - ActionSelect1), true
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}
