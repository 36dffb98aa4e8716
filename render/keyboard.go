package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/game"
)

// Keyboard turns terminal key events into press/release pairs. Terminals only
// report presses and auto-repeats, so a held direction is released once no
// repeat arrived within the hold timeout.
type Keyboard struct {
	holdTimeout time.Duration
	held        map[game.Key]time.Time // Release deadline per held direction
}

// NewKeyboard creates a keyboard adapter with the given hold timeout.
func NewKeyboard(holdTimeout time.Duration) *Keyboard {
	return &Keyboard{
		holdTimeout: holdTimeout,
		held:        make(map[game.Key]time.Time),
	}
}

// IsQuit reports whether the key ends the program.
func IsQuit(key tcell.Key, ch rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && ch == 'q')
}

// MapKey returns the game key bound to a terminal key.
func MapKey(key tcell.Key, ch rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return game.KeyUp, true
		case 's', 'S':
			return game.KeyDown, true
		case 'r', 'R':
			return game.KeyRestart, true
		case 'b', 'B':
			return game.KeyToggleBallSim, true
		case 'k', 'K':
			return game.KeyNudgeUp, true
		case 'j', 'J':
			return game.KeyNudgeDown, true
		}
	}
	return 0, false
}

func isDirection(key game.Key) bool {
	return key == game.KeyUp || key == game.KeyDown
}

// Press handles one key event at time now and returns the commands to forward.
func (k *Keyboard) Press(key tcell.Key, ch rune, now time.Time) []game.InputCommand {
	gameKey, ok := MapKey(key, ch)
	if !ok {
		return nil
	}
	if !isDirection(gameKey) {
		return []game.InputCommand{{Key: gameKey, Pressed: true}}
	}

	var cmds []game.InputCommand
	opposite := game.KeyDown
	if gameKey == game.KeyDown {
		opposite = game.KeyUp
	}
	if _, held := k.held[opposite]; held {
		delete(k.held, opposite)
		cmds = append(cmds, game.InputCommand{Key: opposite, Pressed: false})
	}

	if _, held := k.held[gameKey]; !held {
		cmds = append(cmds, game.InputCommand{Key: gameKey, Pressed: true})
	}
	k.held[gameKey] = now.Add(k.holdTimeout)
	return cmds
}

// Expire releases every direction whose deadline passed by now.
func (k *Keyboard) Expire(now time.Time) []game.InputCommand {
	var cmds []game.InputCommand
	for _, key := range []game.Key{game.KeyUp, game.KeyDown} {
		deadline, held := k.held[key]
		if held && !now.Before(deadline) {
			delete(k.held, key)
			cmds = append(cmds, game.InputCommand{Key: key, Pressed: false})
		}
	}
	return cmds
}

// Held reports whether key is currently considered held.
func (k *Keyboard) Held(key game.Key) bool {
	_, held := k.held[key]
	return held
}
