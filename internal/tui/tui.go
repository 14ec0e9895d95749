// Package tui drives a game session on a tcell screen: it turns key presses
// into actions, draws each turn and plays the end screens.
package tui

import (
	"time"

	"ascii-rogue/internal/game"
	"ascii-rogue/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Blink timings of the end screens.
const (
	blinkCount    = 5
	blinkInterval = 500 * time.Millisecond
	deathHold     = 2 * time.Second
	victoryHold   = 3 * time.Second
)

// Terminal owns the screen for the length of one session.
type Terminal struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sleep    func(time.Duration)
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, sleep: time.Sleep}
}

// Play runs s until it stops accepting turns, then shows the end screen and
// waits for a key. It returns the final status.
func (t *Terminal) Play(s *game.Session) game.Status {
	gmap := s.Map()
	t.renderer = render.NewRenderer(t.screen, gmap.Width, gmap.Height)

	for s.Running() {
		t.draw(s)
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.renderer.Resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				s.Quit()
				continue
			}
			s.Apply(KeyToAction(ev))
		case nil:
			// Screen finalized underneath us.
			s.Quit()
		}
	}

	status := s.Status()
	if status == game.Ongoing {
		return status
	}
	t.renderer.DrawFrame(s.Snapshot())
	t.endScreen(s, status)
	return status
}

func (t *Terminal) draw(s *game.Session) {
	if s.State() == game.StateInventory {
		t.renderer.DrawInventory(s.Inventory())
		return
	}
	t.renderer.DrawFrame(s.Snapshot())
}

// endScreen blinks the verdict banner, then lists run statistics until a
// key is pressed.
func (t *Terminal) endScreen(s *game.Session, status game.Status) {
	draw := func(show, final bool) { t.renderer.DrawDeath(show) }
	hold := deathHold
	if status == game.Victory {
		draw = t.renderer.DrawVictory
		hold = victoryHold
	}

	for range blinkCount {
		draw(true, false)
		t.sleep(blinkInterval)
		draw(false, false)
		t.sleep(blinkInterval)
	}
	draw(true, true)
	t.sleep(hold)

	_, h := t.screen.Size()
	t.renderer.DrawSummary(h/2+4, s.RunLog(), status)
	t.waitKey()
}

func (t *Terminal) waitKey() {
	for {
		switch t.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
