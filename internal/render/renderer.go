package render

import (
	"ascii-rogue/internal/game"
	"ascii-rogue/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of rows reserved below the map: one status line and
// three message lines.
const HUDRows = 4

// Renderer draws session snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen and map size.
func NewRenderer(screen tcell.Screen, mapW, mapH int) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{MapWidth: mapW, MapHeight: mapH}}
	r.Resize()
	return r
}

// Resize recomputes the viewport after the terminal size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(1, h-HUDRows)
}

// DrawFrame renders the map, floor items, monsters, the player and the HUD.
func (r *Renderer) DrawFrame(snap game.Snapshot) {
	r.screen.Clear()
	r.camera.Center(snap.Player.X, snap.Player.Y)

	r.drawMap(snap.Map)
	for _, it := range snap.Items {
		r.drawAt(it.X, it.Y, it.Item.Glyph, StyleFor(it.Item.Color))
	}
	for _, m := range snap.Monsters {
		r.drawAt(m.X, m.Y, m.Glyph, StyleFor(m.Color))
	}
	r.drawAt(snap.Player.X, snap.Player.Y, snap.Player.Glyph, StyleFor(snap.Player.Color))

	r.DrawHUD(snap)
	r.screen.Show()
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	if gmap == nil {
		return
	}
	style := tcell.StyleDefault
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			r.drawAt(x, y, gmap.At(x, y).Glyph(), style)
		}
	}
}

func (r *Renderer) drawAt(wx, wy int, glyph rune, style tcell.Style) {
	sx, sy, onScreen := r.camera.WorldToScreen(wx, wy)
	if !onScreen {
		return
	}
	r.screen.SetContent(sx, sy, glyph, nil, style)
}

// drawText writes text at (x, y), advancing by each rune's display width.
// It returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

// drawCentered writes text horizontally centered on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(centerX(w, text), y, text, style)
}

func centerX(width int, text string) int {
	return max(0, (width-runewidth.StringWidth(text))/2)
}
