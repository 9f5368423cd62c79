package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/boing/internal/config"
	"github.com/diegok/boing/internal/ui"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	a := NewApp(&config.Config{PointsToWin: 3})
	a.screen = ui.NewScreen(sim)
	a.renderer = ui.NewRenderer(a.screen)
	a.session = NewSession(a.cfg.PointsToWin, nil)
	return a
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestApp_QuitKeys(t *testing.T) {
	a := newTestApp(t)

	if !a.handleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("'q' should quit")
	}
	if !a.handleEvent(key(tcell.KeyEscape, 0)) {
		t.Error("Escape should quit")
	}
	if a.handleEvent(key(tcell.KeyRune, ' ')) {
		t.Error("space should not quit")
	}
}

func TestApp_FrameStartsGame(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(key(tcell.KeyDown, 0))
	a.frame()
	if a.session.NumPlayers != 2 {
		t.Errorf("expected down arrow to select 2 players, got %d", a.session.NumPlayers)
	}

	a.handleEvent(key(tcell.KeyRune, ' '))
	a.frame()
	if a.session.State != StatePlay {
		t.Errorf("expected space to start play, got %v", a.session.State)
	}
}

func TestApp_FrameDrawsCourt(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(key(tcell.KeyEnter, 0))
	a.frame()

	// Wait out the key hold so the game runs a frame with no input
	for i := 0; i < ui.HoldTicks; i++ {
		a.frame()
	}

	found := false
	for x := 0; x < 80; x++ {
		for y := 0; y < 24; y++ {
			if r, _ := a.screen.Content(x, y); r == ui.BallChar {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the ball to be drawn")
	}
}

func TestApp_Stop(t *testing.T) {
	a := newTestApp(t)

	a.stop()
	a.stop()

	select {
	case <-a.quit:
	default:
		t.Error("expected quit channel closed")
	}
}

func TestApp_LongConfirmLeavesGameOverOnce(t *testing.T) {
	a := newTestApp(t)
	a.session.State = StateGameOver

	// First press, then auto-repeat after 600ms every other frame
	for i := 0; i < 90; i++ {
		if i == 0 || (i >= 36 && i%2 == 0) {
			a.handleEvent(key(tcell.KeyRune, ' '))
		}
		a.frame()
	}

	if a.session.State != StateMenu {
		t.Errorf("expected one long press to only reach the menu, got %v", a.session.State)
	}
}
