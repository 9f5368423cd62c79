package ui

import "github.com/gdamore/tcell/v2"

// Terminals report key presses but never releases, so a key counts as held
// for HoldTicks after its last press (or auto-repeat).
const HoldTicks = 8 // ~133ms at 60Hz

// ConfirmHoldTicks outlasts the usual auto-repeat delay (up to ~660ms) so a
// long press on Space or Enter stays one press.
const ConfirmHoldTicks = 45 // 750ms at 60Hz

// Action is what a key means to the game
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionP2Up
	ActionP2Down
	ActionConfirm
	actionCount
)

// Input is the state of the controls for one frame
type Input struct {
	Up      bool
	Down    bool
	P2Up    bool
	P2Down  bool
	Confirm bool
}

// KeyToAction converts a key event to a game action.
// Player 1 uses the arrows, a/z or w/s; player 2 uses k/m.
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'w', 'W':
			return ActionUp
		case 'z', 'Z', 's', 'S':
			return ActionDown
		case 'k', 'K':
			return ActionP2Up
		case 'm', 'M':
			return ActionP2Down
		case ' ':
			return ActionConfirm
		}
	}
	return ActionNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// Keyboard tracks which actions are currently held
type Keyboard struct {
	held [actionCount]int
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press marks the action held, resetting its timeout
func (k *Keyboard) Press(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	if a == ActionConfirm {
		k.held[a] = ConfirmHoldTicks
		return
	}
	k.held[a] = HoldTicks
}

// Tick ages every held action by one frame
func (k *Keyboard) Tick() {
	for a := range k.held {
		if k.held[a] > 0 {
			k.held[a]--
		}
	}
}

// Held returns true if the action was pressed within the last HoldTicks
func (k *Keyboard) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return k.held[a] > 0
}

// Snapshot returns the controls for this frame
func (k *Keyboard) Snapshot() Input {
	return Input{
		Up:      k.Held(ActionUp),
		Down:    k.Held(ActionDown),
		P2Up:    k.Held(ActionP2Up),
		P2Down:  k.Held(ActionP2Down),
		Confirm: k.Held(ActionConfirm),
	}
}
