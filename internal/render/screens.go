package render

import (
	"fmt"

	"ascii-rogue/assets"
	"ascii-rogue/internal/component"
	"ascii-rogue/internal/game"

	"github.com/gdamore/tcell/v2"
)

// InventoryPrompt is shown under the item list.
const InventoryPrompt = "Press 1-9 to use/equip item, or any other key to cancel"

// DrawInventory replaces the screen with the numbered backpack listing.
func (r *Renderer) DrawInventory(inv component.Inventory) {
	r.screen.Clear()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.drawText(0, 0, "Inventory:", white.Bold(true))
	for i, item := range inv.Items {
		r.drawText(0, 1+i, fmt.Sprintf("%d) %s", i+1, item.Name), white)
	}
	r.drawText(0, len(inv.Items)+2, InventoryPrompt, white)
	r.screen.Show()
}

// DrawDeath draws one frame of the death banner; show=false blanks it.
func (r *Renderer) DrawDeath(show bool) {
	r.screen.Clear()
	if show {
		_, h := r.screen.Size()
		r.drawCentered(h/2, assets.DeathBanner, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
	r.screen.Show()
}

// DrawVictory draws one frame of the victory banner. The subline appears
// only on the final frame.
func (r *Renderer) DrawVictory(show, final bool) {
	r.screen.Clear()
	_, h := r.screen.Size()
	if show {
		r.drawCentered(h/2, assets.VictoryBanner, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
	if final {
		r.drawCentered(h/2+2, assets.VictorySubline, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	r.screen.Show()
}

// SummaryLines formats run statistics for the end screen.
func SummaryLines(log game.RunLog, status game.Status) []string {
	lines := []string{
		fmt.Sprintf("Seed:           %d", log.Seed),
		fmt.Sprintf("Rooms:          %d", log.Rooms),
		fmt.Sprintf("Turns:          %d", log.TurnsPlayed),
		fmt.Sprintf("Enemies slain:  %d", log.TotalKills()),
	}
	for _, k := range log.Kills() {
		lines = append(lines, fmt.Sprintf("  %s x%d", k.Name, k.Count))
	}
	lines = append(lines,
		fmt.Sprintf("Items used:     %d", log.TotalItemsUsed()),
		fmt.Sprintf("Damage dealt:   %d", log.DamageDealt),
		fmt.Sprintf("Damage taken:   %d", log.DamageTaken),
	)
	if status == game.Defeat && log.CauseOfDeath != "" {
		lines = append(lines, fmt.Sprintf("Killed by:      %s", log.CauseOfDeath))
	}
	return lines
}

// DrawSummary draws the run statistics starting at row y, followed by the
// exit hint.
func (r *Renderer) DrawSummary(y int, log game.RunLog, status game.Status) {
	lines := SummaryLines(log, status)
	for i, line := range lines {
		r.drawText(2, y+i, line, tcell.StyleDefault)
	}
	r.drawText(2, y+len(lines)+1, "Press any key to exit.", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}
