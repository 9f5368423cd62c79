package app

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/diegok/boing/internal/audio"
	"github.com/diegok/boing/internal/config"
	"github.com/diegok/boing/internal/game"
	"github.com/diegok/boing/internal/ui"
)

const TickRate = 60 // Frames per second

// App is the main application controller that drives the frame loop.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.Keyboard
	session  *Session

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		keyboard: ui.NewKeyboard(),
		quit:     make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes audio and the screen, then runs frames until quit.
func (a *App) Run() error {
	// Game works without sound
	var sounds game.Sounds
	if err := audio.Init(); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	} else {
		audio.SetVolume(a.cfg.Volume)
		audio.SetMuted(a.cfg.Mute)
		sounds = audio.Device{}
	}

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.session = NewSession(a.cfg.PointsToWin, sounds)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	log.Info().Int("points_to_win", a.cfg.PointsToWin).Msg("Boing! started")

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop pumps terminal events and runs one frame per tick.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.frame()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keyboard.Press(ui.KeyToAction(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return false
}

// frame runs one update/draw cycle
func (a *App) frame() {
	a.session.Update(a.keyboard.Snapshot())
	a.keyboard.Tick()

	a.renderer.BeginFrame()
	a.session.Draw(a.renderer)
	a.renderer.EndFrame()
}

// stop signals every goroutine to finish
func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	signal.Stop(a.sigChan)
}
