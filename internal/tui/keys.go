package tui

import (
	"ascii-rogue/internal/game"

	"github.com/gdamore/tcell/v2"
)

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) game.Action {
	return actionFor(ev.Key(), ev.Rune())
}

// actionFor maps the key code and rune of a key event. Keys with no binding
// map to ActionCancel, which closes the inventory and is ignored in play.
func actionFor(key tcell.Key, r rune) game.Action {
	switch key {
	case tcell.KeyUp:
		return game.ActionMoveN
	case tcell.KeyDown:
		return game.ActionMoveS
	case tcell.KeyRight:
		return game.ActionMoveE
	case tcell.KeyLeft:
		return game.ActionMoveW
	case tcell.KeyRune:
	default:
		return game.ActionCancel
	}

	switch r {
	case 'w', 'W':
		return game.ActionMoveN
	case 's', 'S':
		return game.ActionMoveS
	case 'd', 'D':
		return game.ActionMoveE
	case 'a', 'A':
		return game.ActionMoveW
	case 'i', 'I':
		return game.ActionInventory
	case 'q', 'Q':
		return game.ActionQuit
	case '+':
		return game.ActionCheat
	}
	if r >= '1' && r <= '9' {
		return game.SelectAction(int(r - '0'))
	}
	return game.ActionCancel
}
