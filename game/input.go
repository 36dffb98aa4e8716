package game

// Key is a logical input forwarded by the windowing collaborator.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyRestart
	KeyToggleBallSim
	KeyNudgeUp
	KeyNudgeDown
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRestart:
		return "restart"
	case KeyToggleBallSim:
		return "toggleBallSim"
	case KeyNudgeUp:
		return "nudgeUp"
	case KeyNudgeDown:
		return "nudgeDown"
	}
	return "unknown"
}

// HandleInput maps key presses and releases onto the human (left) paddle and
// the debug controls. Releasing a direction only cancels acceleration that
// still points in that direction, so the opposite key held down keeps working.
func (b *Board) HandleInput(key Key, pressed bool) {
	paddle := &b.LhsPaddle
	accel := b.cfg.PlayerPaddleAccel

	switch key {
	case KeyUp:
		if pressed {
			paddle.Ddy = -accel
		} else if paddle.Ddy < 0 {
			paddle.Ddy = 0
		}
	case KeyDown:
		if pressed {
			paddle.Ddy = accel
		} else if paddle.Ddy > 0 {
			paddle.Ddy = 0
		}
	case KeyRestart:
		if pressed {
			b.StartGame(true)
		}
	case KeyToggleBallSim:
		if pressed {
			b.overrideBallSim = !b.overrideBallSim
		}
	case KeyNudgeUp:
		if pressed {
			b.Ball.Bound = b.Ball.Bound.Translate(0, -b.cfg.DebugNudge)
		}
	case KeyNudgeDown:
		if pressed {
			b.Ball.Bound = b.Ball.Bound.Translate(0, b.cfg.DebugNudge)
		}
	}
}
