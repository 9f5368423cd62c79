package app

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/diegok/boing/internal/game"
	"github.com/diegok/boing/internal/ui"
)

// State is the screen the game is on
type State int

const (
	StateMenu State = iota
	StatePlay
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlay:
		return "play"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Session holds everything that lives for the whole process: the current
// screen, the menu choice and the game being played.
type Session struct {
	State      State
	NumPlayers int
	Game       *game.Game

	pointsToWin int
	sounds      game.Sounds
	input       ui.Input
	confirmDown bool
}

// NewSession starts on the menu with one player selected. sounds may be nil.
func NewSession(pointsToWin int, sounds game.Sounds) *Session {
	s := &Session{
		State:       StateMenu,
		NumPlayers:  1,
		pointsToWin: pointsToWin,
		sounds:      sounds,
	}
	s.Game = s.newGame(0)
	return s
}

// Update advances one frame with the controls as they are now
func (s *Session) Update(in ui.Input) {
	// Confirm only counts on the frame it goes down
	confirmPressed := in.Confirm && !s.confirmDown
	s.confirmDown = in.Confirm
	s.input = in

	switch s.State {
	case StateMenu:
		if s.NumPlayers == 1 && in.Down {
			s.playSound("down0")
			s.NumPlayers = 2
		} else if s.NumPlayers == 2 && in.Up {
			s.playSound("up0")
			s.NumPlayers = 1
		}

		if confirmPressed {
			s.Game = s.newGame(s.NumPlayers)
			s.setState(StatePlay)
		}

	case StatePlay:
		if winner, ok := s.Game.Winner(); ok {
			log.Info().
				Str("game", s.Game.ID).
				Int("winner", winner).
				Int("left", s.Game.Bats[0].Score).
				Int("right", s.Game.Bats[1].Score).
				Msg("Game over")
			s.setState(StateGameOver)
		} else {
			s.Game.Update()
		}

	case StateGameOver:
		if confirmPressed {
			s.NumPlayers = 1
			s.Game = s.newGame(0)
			s.setState(StateMenu)
		}
	}
}

// Draw paints the game with the menu or game over screen on top
func (s *Session) Draw(surface game.Surface) {
	s.Game.Draw(surface)

	switch s.State {
	case StateMenu:
		surface.Blit("menu"+strconv.Itoa(s.NumPlayers-1), 0, 0)
	case StateGameOver:
		surface.Blit("over", 0, 0)
	}
}

// newGame creates a game where the first humans bats are keyboard
// controlled and the rest are computer controlled
func (s *Session) newGame(humans int) *game.Game {
	var controls [2]game.MoveFunc
	if humans >= 1 {
		controls[0] = s.move(func(in ui.Input) (bool, bool) { return in.Up, in.Down })
	}
	if humans >= 2 {
		controls[1] = s.move(func(in ui.Input) (bool, bool) { return in.P2Up, in.P2Down })
	}
	return game.NewGame(controls, s.pointsToWin, s.sounds)
}

// move builds a bat controller reading the up/down keys picked by keys
func (s *Session) move(keys func(ui.Input) (up, down bool)) game.MoveFunc {
	return func() float64 {
		up, down := keys(s.input)
		switch {
		case down:
			return game.PlayerSpeed
		case up:
			return -game.PlayerSpeed
		}
		return 0
	}
}

func (s *Session) setState(state State) {
	log.Info().
		Str("from", s.State.String()).
		Str("to", state.String()).
		Int("players", s.NumPlayers).
		Msg("State changed")
	s.State = state
}

func (s *Session) playSound(name string) {
	if s.sounds == nil {
		return
	}
	if err := s.sounds.Play(name); err != nil {
		log.Debug().Err(err).Str("sound", name).Msg("Sound playback failed")
	}
}
