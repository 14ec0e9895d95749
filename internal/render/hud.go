package render

import (
	"fmt"
	"strings"

	"ascii-rogue/internal/component"
	"ascii-rogue/internal/game"

	"github.com/gdamore/tcell/v2"
)

// BarWidth is the health bar length in cells.
const BarWidth = 20

// MessageLines is how many recent messages the HUD shows.
const MessageLines = 3

// HealthBar returns how many of width cells are filled for hp/maxHP and the
// bar color: green above 70%, yellow above 30%, red otherwise.
func HealthBar(hp, maxHP, width int) (filled int, color tcell.Color) {
	if maxHP <= 0 {
		return 0, tcell.ColorRed
	}
	hp = min(max(hp, 0), maxHP)
	filled = hp * width / maxHP
	switch {
	case hp*10 > maxHP*7:
		color = tcell.ColorGreen
	case hp*10 > maxHP*3:
		color = tcell.ColorYellow
	default:
		color = tcell.ColorRed
	}
	return filled, color
}

// EquipmentText describes the equipped pieces, or returns "" when nothing is
// equipped.
func EquipmentText(eq component.Equipment) string {
	var b strings.Builder
	if eq.Weapon != nil {
		fmt.Fprintf(&b, " Weapon: %s", eq.Weapon.Name)
	}
	if eq.Armor != nil {
		fmt.Fprintf(&b, " Armor: %s", eq.Armor.Name)
	}
	return b.String()
}

// LastMessages returns up to n of the newest messages, oldest first.
func LastMessages(msgs []game.Event, n int) []game.Event {
	if len(msgs) > n {
		return msgs[len(msgs)-n:]
	}
	return msgs
}

// DrawHUD renders the status line and recent messages below the map.
func (r *Renderer) DrawHUD(snap game.Snapshot) {
	hudY := r.camera.ViewHeight
	if snap.Map != nil {
		hudY = min(hudY, snap.Map.Height)
	}

	st := snap.Player.Stats
	bold := tcell.StyleDefault.Bold(true)
	col := r.drawText(0, hudY, fmt.Sprintf("HP: %d/%d ", st.HP, st.MaxHP), bold)

	filled, color := HealthBar(st.HP, st.MaxHP, BarWidth)
	for i := 0; i < BarWidth; i++ {
		if i < filled {
			r.screen.SetContent(col+i, hudY, '█', nil, bold.Foreground(color))
		} else {
			r.screen.SetContent(col+i, hudY, '░', nil, bold.Foreground(tcell.ColorWhite))
		}
	}
	r.drawText(col+BarWidth, hudY, EquipmentText(snap.Equipment), tcell.StyleDefault)

	for i, msg := range LastMessages(snap.Messages, MessageLines) {
		r.drawText(0, hudY+1+i, msg.Text, tcell.StyleDefault)
	}
}
